// meta/meta.go
package meta

// NUM_MATCHES is the default number of simulated matches per matchup.
const NUM_MATCHES = 30

// PLAYER_NAME labels side A in simulations.
const PLAYER_NAME = "scripted"
