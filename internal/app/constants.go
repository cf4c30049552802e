package app

// HandSize is how many cards each of the two players is dealt from a standard deck.
const HandSize = 26
