/*
Package event provides the publish/subscribe system and default logger.
*/
package event

import (
	"github.com/leandro-lugaresi/hub"
)

// Data represents the payload of an event message.
type Data = hub.Fields

// Hub is the central message hub type.
type Hub = hub.Hub

// Message represents a single published event.
type Message = hub.Message

var channelCap = 64
var sharedHub = NewHub()

// NewHub returns a new message hub.
func NewHub() *Hub {
	return hub.New()
}

// SharedHub returns the message hub shared by all subscribers.
func SharedHub() *Hub {
	return sharedHub
}

// Publish sends an event message to all subscribers of the named topic.
func Publish(event string, data Data) {
	SharedHub().Publish(Message{
		Name:   event,
		Fields: data,
	})
}

// Subscribe returns a subscription for the given topics.
func Subscribe(topics ...string) hub.Subscription {
	return SharedHub().Subscribe(channelCap, topics...)
}

// Unsubscribe closes the given subscription.
func Unsubscribe(s hub.Subscription) {
	SharedHub().Unsubscribe(s)
}

// Error logs an error message and notifies subscribers.
func Error(msg string) {
	Log.Error(msg)
	Publish("notify.error", Data{"message": msg})
}

// Success logs an info message and notifies subscribers.
func Success(msg string) {
	Log.Info(msg)
	Publish("notify.success", Data{"message": msg})
}

// Info logs an info message and notifies subscribers.
func Info(msg string) {
	Log.Info(msg)
	Publish("notify.info", Data{"message": msg})
}

// Warn logs a warning message and notifies subscribers.
func Warn(msg string) {
	Log.Warn(msg)
	Publish("notify.warning", Data{"message": msg})
}
