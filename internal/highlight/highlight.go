/*
 Copyright 2024 Qiniu Cloud (qiniu.com).

 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     http://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

// Package highlight coordinates live inline annotation of style issues.
// Enabling a buffer registers one annotation rule per checker; disabling
// removes exactly those rules by handle, leaving unrelated annotations alone.
package highlight

import (
	"github.com/prosecheck/prosecheck/internal/buffer"
	"github.com/prosecheck/prosecheck/internal/checker"
)

// Coordinator tracks which buffers have live-highlight mode enabled. The
// registry is keyed by buffer identity, so two buffers with equal content
// toggle independently.
type Coordinator struct {
	checkers []checker.Checker

	// enabled maps a buffer to the rule handles registered on it,
	// one per checker, in checker order.
	enabled map[*buffer.Buffer][]buffer.RuleID

	global bool
}

// New returns a coordinator that highlights matches of the given checkers.
func New(checkers []checker.Checker) *Coordinator {
	return &Coordinator{
		checkers: checkers,
		enabled:  make(map[*buffer.Buffer][]buffer.RuleID),
	}
}

// Enable turns live-highlight mode on for b. Enabling an already-enabled
// buffer is a no-op: rules are never registered twice.
func (c *Coordinator) Enable(b *buffer.Buffer) {
	if _, ok := c.enabled[b]; ok {
		return
	}
	ids := make([]buffer.RuleID, 0, len(c.checkers))
	for _, ck := range c.checkers {
		ids = append(ids, b.AddRule(ck.Rule()))
	}
	c.enabled[b] = ids
}

// Disable turns live-highlight mode off for b, removing exactly the rules
// Enable registered. Disabling a buffer that was never enabled is a no-op.
func (c *Coordinator) Disable(b *buffer.Buffer) {
	ids, ok := c.enabled[b]
	if !ok {
		return
	}
	for _, id := range ids {
		b.RemoveRule(id)
	}
	delete(c.enabled, b)
}

// Toggle flips live-highlight mode for b and reports the new state.
func (c *Coordinator) Toggle(b *buffer.Buffer) bool {
	if c.Enabled(b) {
		c.Disable(b)
		return false
	}
	c.Enable(b)
	return true
}

// Enabled reports whether live-highlight mode is on for b.
func (c *Coordinator) Enabled(b *buffer.Buffer) bool {
	_, ok := c.enabled[b]
	return ok
}

// SetGlobal turns global mode on or off. With global mode on, every buffer
// subsequently attached gets live-highlight mode automatically.
func (c *Coordinator) SetGlobal(on bool) {
	c.global = on
}

// Global reports whether global mode is on.
func (c *Coordinator) Global() bool {
	return c.global
}

// Attach introduces a newly created buffer to the coordinator. It enables
// live-highlight mode when global mode is on, and is otherwise a no-op.
func (c *Coordinator) Attach(b *buffer.Buffer) {
	if c.global {
		c.Enable(b)
	}
}
