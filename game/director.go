package game

// Director plays the game on the player's behalf
type Director interface {
	/**
	 * Initialize the director for a newly started game
	 */
	Init(*Game)

	/**
	 * Perform a single move, returning false if no move could be made
	 */
	Act() bool

	/**
	 * Stop acting; called once the game is over or replaced
	 */
	End()
}
