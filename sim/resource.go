// Implements the ResourcePool, a named capacity-limited pool with a FIFO
// wait queue, and the Request handle that carries a claim through its
// lifecycle.

package sim

import "fmt"

// RequestStatus represents the lifecycle state of a pool request.
type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestGranted   RequestStatus = "granted"
	RequestWithdrawn RequestStatus = "withdrawn"
	RequestReleased  RequestStatus = "released"
)

// GrantFunc is the continuation invoked when a request is granted. It runs
// at the current virtual time, inside the turn of whichever process freed
// the unit (or inside the requesting process's turn for immediate grants).
type GrantFunc func(*Request)

// Request is a single claim on one unit of a ResourcePool. It transitions
// pending → granted (head of queue when a unit frees) or pending →
// withdrawn (race loser). Granted requests are released exactly once by
// the owning process.
type Request struct {
	pool    *ResourcePool
	status  RequestStatus
	onGrant GrantFunc
}

// Status returns the request's current lifecycle state.
func (r *Request) Status() RequestStatus { return r.status }

// Pool returns the pool this request was issued against.
func (r *Request) Pool() *ResourcePool { return r.pool }

// ResourcePool is a named, capacity-limited pool of identical units with a
// first-come-first-served wait queue. Capacity is fixed for the pool's
// lifetime. State mutates only inside the single active event's turn, so
// no locking is needed.
type ResourcePool struct {
	name     string
	capacity int
	inUse    int
	waitQ    []*Request
}

// NewResourcePool creates a pool with the given unit capacity.
func NewResourcePool(name string, capacity int) *ResourcePool {
	if capacity < 0 {
		panic(fmt.Sprintf("pool %s: negative capacity %d", name, capacity))
	}
	return &ResourcePool{name: name, capacity: capacity}
}

// Name returns the pool's name.
func (p *ResourcePool) Name() string { return p.name }

// Capacity returns the fixed unit capacity.
func (p *ResourcePool) Capacity() int { return p.capacity }

// InUse returns the number of units currently granted.
func (p *ResourcePool) InUse() int { return p.inUse }

// QueueLen returns the number of requests waiting for a unit.
func (p *ResourcePool) QueueLen() int { return len(p.waitQ) }

// Request claims one unit. If a unit is free, the request is granted
// synchronously and onGrant runs before Request returns; otherwise the
// request joins the wait queue and onGrant runs when a unit frees, in FIFO
// order.
func (p *ResourcePool) Request(onGrant GrantFunc) *Request {
	req := &Request{pool: p, status: RequestPending, onGrant: onGrant}
	if p.inUse < p.capacity {
		p.grant(req)
		return req
	}
	p.waitQ = append(p.waitQ, req)
	return req
}

func (p *ResourcePool) grant(req *Request) {
	p.inUse++
	req.status = RequestGranted
	if req.onGrant != nil {
		req.onGrant(req)
	}
}

// Release returns a granted unit to the pool, then grants the new queue
// head, if any. Releasing a request that is not granted is a programming
// error.
func (p *ResourcePool) Release(req *Request) {
	if req.status != RequestGranted {
		panic(fmt.Sprintf("pool %s: release of %s request", p.name, req.status))
	}
	req.status = RequestReleased
	p.inUse--
	if len(p.waitQ) > 0 {
		head := p.waitQ[0]
		p.waitQ = p.waitQ[1:]
		p.grant(head)
	}
}

// Withdraw removes a still-pending request from the wait queue so it can
// never be granted, and reports whether it did so. A request that was
// already granted is left untouched; the race combinator only withdraws
// the side that lost.
func (p *ResourcePool) Withdraw(req *Request) bool {
	if req.status != RequestPending {
		return false
	}
	for i, queued := range p.waitQ {
		if queued == req {
			p.waitQ = append(p.waitQ[:i], p.waitQ[i+1:]...)
			break
		}
	}
	req.status = RequestWithdrawn
	return true
}
