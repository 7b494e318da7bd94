package redisx

import "time"

const (
	// Cart snapshot: cart:{session_id} -> JSON array of cart lines
	KeyCart = "cart:%s"

	// Stored profile ("current user"): profile:{session_id} -> JSON profile
	KeyProfile = "profile:%s"

	// Admin auth flag: admin:auth:{token} -> admin email
	KeyAdminAuth = "admin:auth:%s"

	// Dedup event processing: dedup:{service}:{event_id}
	KeyDedup = "dedup:%s:%s"

	// Idempotency for order placement: idem:order:place:{session_id} -> order JSON
	KeyIdemPlaceOrder = "idem:order:place:%s"
)

var (
	TTLCart        = 30 * 24 * time.Hour
	TTLProfile     = 30 * 24 * time.Hour
	TTLAdminAuth   = 12 * time.Hour
	TTLDedup       = 48 * time.Hour
	TTLIdempotency = 24 * time.Hour
)
