package kernel

// Context provides task-local access to kernel operations during one Step.
type Context struct {
	k      *Kernel
	taskID TaskID

	blocked     bool
	blockOnTick bool
	blockOn     Endpoint
}

// TaskID returns the current task ID.
func (c *Context) TaskID() TaskID { return c.taskID }

// Now returns the kernel time in milliseconds.
func (c *Context) Now() uint64 { return c.k.now }

// Send enqueues a message on the capability's endpoint without blocking.
func (c *Context) Send(to Capability, kind uint16, payload []byte) SendResult {
	if !to.Valid() || !to.canSend() {
		return SendErrNoSendRight
	}
	return c.k.send(to.ep, kind, payload)
}

// TryRecv dequeues one message from the capability's endpoint.
func (c *Context) TryRecv(from Capability) (Message, bool) {
	if !from.Valid() || !from.canRecv() || from.ep >= c.k.endpointCount {
		return Message{}, false
	}
	return c.k.endpoints[from.ep].mb.TryRecv()
}

// BlockOnTick parks the task until the next Kernel.Tick.
func (c *Context) BlockOnTick() {
	c.blocked = true
	c.blockOnTick = true
}

// BlockOnRecv parks the task until a message is sent to the capability's endpoint.
func (c *Context) BlockOnRecv(from Capability) {
	if !from.Valid() || !from.canRecv() {
		return
	}
	c.blocked = true
	c.blockOnTick = false
	c.blockOn = from.ep
}
