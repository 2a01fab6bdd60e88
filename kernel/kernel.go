// Package kernel is a small cooperative scheduler: tasks run one Step at a time in
// round-robin order and talk to each other through fixed-size mailboxes.
package kernel

const (
	maxTasks     = 16
	maxEndpoints = 16
)

type TaskID uint8

// Rights define which operations are allowed for a capability.
type Rights uint8

const (
	RightSend Rights = 1 << iota
	RightRecv
)

// Endpoint identifies a mailbox.
type Endpoint uint8

// Capability grants access to an endpoint.
type Capability struct {
	ep     Endpoint
	rights Rights
}

func (c Capability) Valid() bool { return c.rights != 0 }

func (c Capability) canSend() bool { return c.rights&RightSend != 0 }
func (c Capability) canRecv() bool { return c.rights&RightRecv != 0 }

// Restrict returns a capability with a reduced set of rights.
func (c Capability) Restrict(rights Rights) Capability {
	r := c.rights & rights
	if r == 0 {
		return Capability{}
	}
	return Capability{ep: c.ep, rights: r}
}

// SendResult describes the outcome of a send attempt.
type SendResult uint8

const (
	SendOK SendResult = iota
	SendErrNoSendRight
	SendErrNoEndpoint
	SendErrPayloadTooLarge
	SendErrQueueFull
)

func (r SendResult) String() string {
	switch r {
	case SendOK:
		return "ok"
	case SendErrNoSendRight:
		return "capability has no send right"
	case SendErrNoEndpoint:
		return "no such endpoint"
	case SendErrPayloadTooLarge:
		return "payload too large"
	case SendErrQueueFull:
		return "queue full"
	default:
		return "unknown"
	}
}

// Task is a cooperative unit of execution.
type Task interface {
	Step(*Context)
}

type endpointState struct {
	mb       Mailbox
	waitMask uint32
}

type taskState struct {
	task     Task
	runnable bool
}

// Kernel is a minimal cooperative scheduler plus message router.
type Kernel struct {
	endpoints     [maxEndpoints]endpointState
	endpointCount Endpoint

	tasks     [maxTasks]taskState
	taskCount TaskID

	rr TaskID

	tickWaitMask uint32
	now          uint64
}

// New creates a kernel instance.
func New() *Kernel {
	return &Kernel{}
}

// NewEndpoint allocates a mailbox and returns a capability for it.
func (k *Kernel) NewEndpoint(rights Rights) Capability {
	if k.endpointCount >= maxEndpoints {
		return Capability{}
	}
	ep := k.endpointCount
	k.endpointCount++
	return Capability{ep: ep, rights: rights}
}

// AddTask registers a task and returns its ID.
func (k *Kernel) AddTask(t Task) TaskID {
	if k.taskCount >= maxTasks {
		return 0
	}
	id := k.taskCount
	k.taskCount++
	k.tasks[id] = taskState{task: t, runnable: true}
	return id
}

// Now returns the time passed to the last Tick, in milliseconds.
func (k *Kernel) Now() uint64 { return k.now }

// Step runs at most one runnable task step and reports whether one ran.
func (k *Kernel) Step() bool {
	if k.taskCount == 0 || InPanicMode() {
		return false
	}

	for i := TaskID(0); i < k.taskCount; i++ {
		id := (k.rr + i) % k.taskCount
		st := &k.tasks[id]
		if st.task == nil || !st.runnable {
			continue
		}

		k.rr = (id + 1) % k.taskCount
		ctx := &Context{k: k, taskID: id}
		if !k.runStep(st.task, ctx) {
			st.runnable = false
			return true
		}

		if ctx.blocked {
			st.runnable = false
			if ctx.blockOnTick {
				k.tickWaitMask |= 1 << id
			} else if ctx.blockOn < k.endpointCount {
				k.endpoints[ctx.blockOn].waitMask |= 1 << id
			}
		}
		return true
	}
	return false
}

// runStep calls the task and reports false if it panicked.
func (k *Kernel) runStep(t Task, ctx *Context) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			triggerPanic(PanicInfo{TaskID: ctx.taskID, Value: r})
		}
	}()
	t.Step(ctx)
	return true
}

// RunUntilIdle steps tasks until none is runnable or budget steps have run.
func (k *Kernel) RunUntilIdle(budget int) int {
	n := 0
	for n < budget && k.Step() {
		n++
	}
	return n
}

// Tick records the current time and wakes tasks blocked via Context.BlockOnTick.
func (k *Kernel) Tick(now uint64) {
	k.now = now

	wait := k.tickWaitMask
	if wait == 0 {
		return
	}
	for tid := TaskID(0); tid < k.taskCount; tid++ {
		if wait&(1<<tid) != 0 {
			k.tasks[tid].runnable = true
		}
	}
	k.tickWaitMask = 0
}

func (k *Kernel) send(to Endpoint, kind uint16, payload []byte) SendResult {
	if to >= k.endpointCount {
		return SendErrNoEndpoint
	}
	if len(payload) > MaxMessageBytes {
		return SendErrPayloadTooLarge
	}

	var msg Message
	msg.To = to
	msg.Kind = kind
	msg.Len = uint16(len(payload))
	copy(msg.Data[:], payload)

	ep := &k.endpoints[to]
	if !ep.mb.TrySend(msg) {
		return SendErrQueueFull
	}

	wait := ep.waitMask
	for tid := TaskID(0); wait != 0 && tid < k.taskCount; tid++ {
		if wait&(1<<tid) == 0 {
			continue
		}
		k.tasks[tid].runnable = true
		wait &^= 1 << tid
	}
	ep.waitMask = 0
	return SendOK
}
