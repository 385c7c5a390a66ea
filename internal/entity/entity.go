package entity

// Player is the state carried only by the player variant.
type Player struct {
	Facing Direction // Direction used by the next auto-step
}

// Entity is the occupant of a cell. Every kind except the player is a
// stateless marker; the player variant carries a *Player payload.
type Entity struct {
	kind   Kind
	player *Player
}

// New creates an entity of the given kind. A player starts facing left.
func New(kind Kind) Entity {
	e := Entity{kind: kind}
	if kind == KindPlayer {
		e.player = &Player{Facing: DirLeft}
	}
	return e
}

// Empty returns the occupant of a free cell.
func Empty() Entity {
	return Entity{kind: KindEmpty}
}

// Kind returns the entity's type tag.
func (e Entity) Kind() Kind {
	return e.kind
}

// Player returns the player payload, or nil for every other kind.
func (e Entity) Player() *Player {
	return e.player
}
