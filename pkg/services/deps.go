package services

import "time"

// Cache is the slice of the redis client the services use.
// *cache.Redis satisfies it; tests plug in fakes.
type Cache interface {
	Get(key string, dest interface{}) bool
	Set(key string, value interface{}, ttl time.Duration)
	Del(keys ...string)
	DelPattern(pattern string)
}

// Broadcaster pushes gallery events to connected websocket clients.
// *hub.Hub satisfies it.
type Broadcaster interface {
	Broadcast(action string, data interface{})
}
