package app

// MaxSeats bounds the seated players of a single table. Spectators are not counted.
// Rules may lower it through Settings.MaxPlayers but never raise it.
const MaxSeats = 6
