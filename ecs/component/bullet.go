package component

// Bullet tags projectile entities. Owner is the entity that fired it.
type Bullet struct {
	Owner uint64
}

var BulletComponent = NewComponent[Bullet]()
