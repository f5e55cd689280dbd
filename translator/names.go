package translator

// The synthesized port, payload, and capture variable names are pure
// functions of their inputs so that the reactor and composition
// emitters derive matching names independently.

// outputPortName returns the name of the output port through which the
// source instance sends the message to the target instance.
func outputPortName(message, target, source string) string {
	return message + "_to_" + target + "_from_" + source
}

// inputPortName returns the name of the input port through which the
// target instance receives the message from the source instance.
func inputPortName(message, source, target string) string {
	return message + "_from_" + source + "_to_" + target
}

// payloadStructName returns the name of the payload struct carrying the
// arguments of the named message server of the named class.
func payloadStructName(className, message string) string {
	return className + "_" + message + "_t"
}

// captureVarName returns the name of the state variable capturing a
// handler parameter between scheduling and execution of the handler's
// logical action.
func captureVarName(param, handler string) string {
	return param + "_" + handler
}
