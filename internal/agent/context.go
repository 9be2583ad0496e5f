package agent

import "time"

// Turn is one prior exchange in a conversation.
type Turn struct {
	Role string // "user" or an agent name
	Text string
	Time time.Time
}

// Context is the explicit conversation history passed into every
// orchestrator call. It replaces any agent-lifetime buffer: the agents
// are pure functions of their inputs and this context.
type Context struct {
	Turns []Turn
}

// Append records a turn and returns the context for chaining.
func (c *Context) Append(role, text string) *Context {
	c.Turns = append(c.Turns, Turn{Role: role, Text: text, Time: time.Now()})
	return c
}

// LastUserText returns the most recent user turn, if any.
func (c *Context) LastUserText() (string, bool) {
	for i := len(c.Turns) - 1; i >= 0; i-- {
		if c.Turns[i].Role == "user" {
			return c.Turns[i].Text, true
		}
	}
	return "", false
}
