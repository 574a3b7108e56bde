package component

// TTL destroys its entity once Frames update ticks have elapsed.
type TTL struct {
	Frames int
}

var TTLComponent = NewComponent[TTL]()
