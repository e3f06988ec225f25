package sim

// RaceGrant identifies which pool won a compound resource request.
type RaceGrant struct {
	Index   int // position of the winning pool in the slice passed to StartRace
	Request *Request
}

// StartRace issues one request against each pool and resolves with the
// first grant. Every sibling request still pending at that moment is
// withdrawn before resolve returns control, so a losing pool never keeps a
// phantom queued request that would swallow a future grant meant for a
// real waiter.
//
// If some pool has a free unit, the race settles synchronously inside
// StartRace and requests are never issued against the remaining pools.
func StartRace(pools []*ResourcePool, resolve func(RaceGrant)) {
	settled := false
	requests := make([]*Request, 0, len(pools))
	for i, pool := range pools {
		idx := i
		req := pool.Request(func(winner *Request) {
			settled = true
			for _, sibling := range requests {
				if sibling != winner {
					sibling.pool.Withdraw(sibling)
				}
			}
			resolve(RaceGrant{Index: idx, Request: winner})
		})
		if settled {
			return
		}
		requests = append(requests, req)
	}
}
