package board

// TurnContext maps each PieceType to the concrete piece of the side to move
// (own) and of its opponent (enemy). own[t] and enemy[t] always differ only in
// the colour bit.
type TurnContext struct {
	own   [PieceTypeCount]Piece
	enemy [PieceTypeCount]Piece
	turn  Side
}

func NewTurnContext(s Side) TurnContext {
	var tc TurnContext
	tc.Initialize(s)
	return tc
}

// Initialize assigns the mapping for s directly. Used when importing a position.
func (tc *TurnContext) Initialize(s Side) {
	tc.turn = s
	if s == SideWhite {
		tc.own = [PieceTypeCount]Piece{WhitePawn, WhiteKnight, WhiteBishop, WhiteRook, WhiteQueen, WhiteKing}
		tc.enemy = [PieceTypeCount]Piece{BlackPawn, BlackKnight, BlackBishop, BlackRook, BlackQueen, BlackKing}
		return
	}
	tc.own = [PieceTypeCount]Piece{BlackPawn, BlackKnight, BlackBishop, BlackRook, BlackQueen, BlackKing}
	tc.enemy = [PieceTypeCount]Piece{WhitePawn, WhiteKnight, WhiteBishop, WhiteRook, WhiteQueen, WhiteKing}
}

// Flip hands the move to the opponent. The old own pieces become the enemy
// pieces and the new own pieces are the old ones with the colour bit flipped.
func (tc *TurnContext) Flip() {
	tc.turn = tc.turn.Opposite()
	tc.enemy = tc.own
	for t := range tc.own {
		tc.own[t] ^= 1
	}
}

func (tc *TurnContext) Turn() Side {
	return tc.turn
}

func (tc *TurnContext) Own(t PieceType) Piece {
	return tc.own[t]
}

func (tc *TurnContext) Enemy(t PieceType) Piece {
	return tc.enemy[t]
}
