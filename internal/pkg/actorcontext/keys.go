package actorcontext

// Shared Locals keys used across controllers and middlewares
const (
	KeyActorContext = "ACTOR_CONTEXT"
	KeyAdminID      = "admin_id"
	KeyRole         = "role"
)
