package comm

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Retries is the attempt bound for mutating commands.
const Retries = 5

func serializeCommand(cmd Command) []byte {
	switch cmd.command {
	case test:
		return []byte("ping")
	case raw:
		return cmd.payload
	case next:
		return []byte("NXT")
	case swap:
		return []byte("SWP")
	case following:
		return []byte(fmt.Sprintf("FLW%s;%s", cmd.task, stripHash(cmd.color)))
	case add:
		return []byte(fmt.Sprintf("ADD%s;%s", cmd.task, stripHash(cmd.color)))
	default:
		return nil
	}
}

// Test probes the device. Write and read outcomes are reported
// independently; neither aborts the other and nothing is returned to the
// caller.
func Test(device Transport) {
	log.Debug("starting communication test...")
	log.Debug("sending data to device...")
	if n, err := device.Write(serializeCommand(NewTestCommand())); err != nil {
		log.Infof("failed to send data to the device: %v", err)
		log.Error("Writing . . . . . [ FAILED ]")
	} else {
		log.Debugf("successfully sent %d bytes to the device", n)
		log.Info("Writing . . . . . [ OK ]")
	}
	log.Debug("reading data from device...")
	ack := make([]byte, 1)
	if n, err := device.Read(ack); err != nil {
		log.Infof("failed to read data from the device: %v", err)
		log.Error("Reading . . . . . [ FAILED ]")
	} else {
		log.Debugf("successfully read %d bytes from the device", n)
		log.Info("Reading . . . . . [ OK ]")
	}
	log.Debug("communication test finished")
}

// Raw sends a payload verbatim, best-effort like Test.
func Raw(device Transport, payload []byte) {
	if n, err := device.Write(serializeCommand(NewRawCommand(payload))); err != nil {
		log.Errorf("failed to send data to the device: %v", err)
	} else {
		log.Infof("successfully sent %d bytes to the device", n)
	}
	ack := make([]byte, 1)
	if n, err := device.Read(ack); err != nil {
		log.Errorf("failed to read data from the device: %v", err)
	} else {
		log.Infof("got a response of %d bytes from the device: %v", n, ack[:n])
	}
}

// Send writes a mutating command and waits for the one-byte ack. Only
// the presence of the ack matters, its value is not inspected. A write
// success followed by a read failure is an overall failure: the command
// counts as not acknowledged.
func Send(device Transport, cmd Command) error {
	data := serializeCommand(cmd)
	if data == nil {
		return fmt.Errorf("unexpected command: %#v", cmd)
	}
	if _, err := device.Write(data); err != nil {
		return fmt.Errorf("write failed: %w", err)
	}
	ack := make([]byte, 1)
	if _, err := device.Read(ack); err != nil {
		return fmt.Errorf("read failed: %w", err)
	}
	return nil
}

// SendWithRetry dispatches cmd up to Retries times, retrying immediately
// on failure. A lost ack still retries, so the device may apply a
// command twice.
func SendWithRetry(device Transport, cmd Command) bool {
	for i := 0; i < Retries; i++ {
		err := Send(device, cmd)
		if err == nil {
			log.Info("Success!")
			return true
		}
		log.Warnf("failed to communicate: %v", err)
		log.Infof("retrying... %d/%d", i+1, Retries)
	}
	return false
}
