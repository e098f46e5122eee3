package chess

// Game holds one game's parsed movetext together with its raw tag
// section. Tag lines are carried verbatim; interpreting them belongs to
// an outer layer.
type Game struct {
	// TagSection is the raw tag-pair lines preceding the movetext,
	// in input order and without their line terminators.
	TagSection []string

	// MoveText is the parsed movetext of the game.
	MoveText MoveText
}

// Result returns the recorded outcome of the game, Open when the
// movetext carries no terminating result.
func (g *Game) Result() GameResult {
	for i := len(g.MoveText) - 1; i >= 0; i-- {
		if end, ok := g.MoveText[i].(GameEndEntry); ok {
			return end.Result
		}
	}
	return Open
}

// PlyCount returns the number of moves in the main line.
func (g *Game) PlyCount() int {
	return len(g.MoveText.Moves())
}

// Database is an ordered collection of games, typically all games of
// one input file.
type Database struct {
	Games []*Game
}

// Add appends a game to the database.
func (d *Database) Add(g *Game) {
	d.Games = append(d.Games, g)
}

// Len returns the number of games in the database.
func (d *Database) Len() int {
	return len(d.Games)
}
