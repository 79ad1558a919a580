package common

import "github.com/gopherjs/gopherjs/js"

var EnableDebug = true

// console returns the browser console, or nil outside a browser.
func console() *js.Object {
	if js.Global == nil || js.Global == js.Undefined {
		return nil
	}
	c := js.Global.Get("console")
	if c == js.Undefined {
		return nil
	}
	return c
}

// Debug logs a message to the browser console if debug mode is enabled.
func Debug(args ...interface{}) {
	if c := console(); EnableDebug && c != nil {
		c.Call("log", args...)
	}
}

// DebugWarn logs a warning to the browser console if debug mode is enabled.
func DebugWarn(args ...interface{}) {
	if c := console(); EnableDebug && c != nil {
		c.Call("warn", args...)
	}
}

// DebugError logs an error to the browser console. Errors are logged even
// with debug mode off.
func DebugError(args ...interface{}) {
	if c := console(); c != nil {
		c.Call("error", args...)
	}
}
