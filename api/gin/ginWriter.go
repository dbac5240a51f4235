package gin

type ginWriter struct {
}

// Write will output the message using the logger
func (gv *ginWriter) Write(p []byte) (n int, err error) {
	log.Debug("gin server", "message", string(p))

	return len(p), nil
}

type ginErrorWriter struct {
}

// Write will output the error using the logger
func (gev *ginErrorWriter) Write(p []byte) (n int, err error) {
	log.Debug("gin server", "error", string(p))

	return len(p), nil
}
