package core

// Entity is a unique identifier for a simulated entity (host or actor)
// Zero is reserved as "none"
type Entity uint64
