package comm

func NewTestCommand() Command {
	return Command{command: test}
}

func NewRawCommand(payload []byte) Command {
	return Command{command: raw, payload: payload}
}

func NewNextCommand() Command {
	return Command{command: next}
}

func NewSwapCommand() Command {
	return Command{command: swap}
}

func NewFollowingCommand(task, color string) Command {
	return Command{command: following, task: task, color: color}
}

func NewAddCommand(task, color string) Command {
	return Command{command: add, task: task, color: color}
}
