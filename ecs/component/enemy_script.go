package component

import "github.com/d5/tengo/v2"

// EnemyScript binds a tengo behaviour script to one enemy. Compiled is
// cloned from a shared program by the script system; State persists between
// ticks.
type EnemyScript struct {
	Path     string
	Compiled *tengo.Compiled
	State    *tengo.Map
	Disabled bool
}

var EnemyScriptComponent = NewComponent[EnemyScript]()
