package logger

// ErrorChain exposes errorChain for white-box tests.
var ErrorChain = errorChain
