package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// World owns bodies, integrates them in fixed steps and reports contacts
// Not safe for concurrent use
type World struct {
	Gravity mgl64.Vec3

	bodies   []*Body
	nextID   uint32
	contacts ContactQueue
}

func NewWorld(gravity mgl64.Vec3) *World {
	return &World{Gravity: gravity, nextID: 1}
}

// Add registers a body and assigns its ID
func (w *World) Add(b *Body) *Body {
	b.ID = w.nextID
	w.nextID++
	w.bodies = append(w.bodies, b)
	return b
}

// Remove unregisters a body, pending contacts that reference it are kept
func (w *World) Remove(b *Body) {
	for i, existing := range w.bodies {
		if existing == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			return
		}
	}
}

// Bodies returns registered bodies in insertion order
func (w *World) Bodies() []*Body {
	return w.bodies
}

// Step advances the simulation by dt seconds
// Order: integrate, then detect and resolve each admitted pair in insertion order
func (w *World) Step(dt float64) {
	for _, b := range w.bodies {
		if b.Static() {
			continue
		}
		w.integrate(b, dt)
	}

	for i := 0; i < len(w.bodies); i++ {
		a := w.bodies[i]
		for j := i + 1; j < len(w.bodies); j++ {
			b := w.bodies[j]
			if a.Static() && b.Static() {
				continue
			}
			if !a.CanCollide(b) {
				continue
			}

			normal, depth, ok := collide(a, b)
			if !ok {
				continue
			}

			impact := a.Velocity.Sub(b.Velocity).Dot(normal)
			if a.Monitor || b.Monitor {
				w.contacts.Push(Contact{
					A:              a,
					B:              b,
					Normal:         normal,
					Depth:          depth,
					ImpactVelocity: impact,
				})
			}

			resolve(a, b, normal, depth)
		}
	}
}

// DrainContacts returns and clears the contacts queued since the last drain
func (w *World) DrainContacts() []Contact {
	return w.contacts.Consume()
}

// ClearContacts discards queued contacts
func (w *World) ClearContacts() {
	w.contacts.Clear()
}

// DroppedContacts returns how many contacts overflowed the queue
func (w *World) DroppedContacts() uint64 {
	return w.contacts.Dropped()
}

func (w *World) integrate(b *Body, dt float64) {
	if b.GravityScale != 0 {
		b.Velocity = b.Velocity.Add(w.Gravity.Mul(b.GravityScale * dt))
	}
	b.Position = b.Position.Add(b.Velocity.Mul(dt))

	if b.FixedRotation || b.AngularVelocity.LenSqr() == 0 {
		return
	}
	spin := mgl64.Quat{W: 0, V: b.AngularVelocity.Mul(0.5 * dt)}
	b.Orientation = b.Orientation.Add(spin.Mul(b.Orientation)).Normalize()
}

// resolve separates the pair along normal and removes approaching velocity
func resolve(a, b *Body, normal mgl64.Vec3, depth float64) {
	invA, invB := a.InvMass(), b.InvMass()
	total := invA + invB
	if total == 0 {
		return
	}

	a.Position = a.Position.Add(normal.Mul(depth * invA / total))
	b.Position = b.Position.Sub(normal.Mul(depth * invB / total))

	approach := a.Velocity.Sub(b.Velocity).Dot(normal)
	if approach >= 0 {
		return
	}

	restitution := math.Max(a.Restitution, b.Restitution)
	j := -(1 + restitution) * approach / total
	impulse := normal.Mul(j)
	a.Velocity = a.Velocity.Add(impulse.Mul(invA))
	b.Velocity = b.Velocity.Sub(impulse.Mul(invB))
}
