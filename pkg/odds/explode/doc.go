// Package explode builds exploding dice: when a roll meets a threshold
// condition another distribution is rolled and added.
//
// Exactly one level of explosion is applied. The added roll is not checked
// again; nest Apply for more levels.
package explode
