// Package log builds the logrus logger shared by every component.
package log
