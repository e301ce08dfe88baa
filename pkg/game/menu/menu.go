// Package menu drives the player-facing interaction loop: numbered
// prompts, choice reading, and the move menu.
package menu

import (
	"fmt"
	"io"

	"github.com/leonelquinteros/gotext"

	"spookymanor/pkg/engine/input"
	"spookymanor/pkg/engine/world"
	"spookymanor/pkg/game/gameplay"
	"spookymanor/pkg/game/renderer"
	"spookymanor/pkg/game/state"
)

// Controller runs menus for one session. Each controller owns its
// input and output, so concurrent sessions never share state.
type Controller struct {
	Session *state.Session
	In      *input.Reader
	Out     io.Writer
}

// NewController creates a controller for the given session
func NewController(s *state.Session, in io.Reader, out io.Writer) *Controller {
	return &Controller{
		Session: s,
		In:      input.NewReader(in),
		Out:     out,
	}
}

// SetCurrentRoom places the player in the given room
func (c *Controller) SetCurrentRoom(room *world.Room) {
	c.Session.SetCurrentRoom(room)
}

// GetCurrentRoom returns the room the player currently occupies
func (c *Controller) GetCurrentRoom() *world.Room {
	return c.Session.GetCurrentRoom()
}

// RemainingFriends returns how many friends are still hidden
func (c *Controller) RemainingFriends() int {
	return c.Session.RemainingFriendCount()
}

// FlushMessages prints and clears the session's pending messages
func (c *Controller) FlushMessages() {
	for _, msg := range c.Session.DrainMessages() {
		fmt.Fprintln(c.Out, msg)
	}
}

// ShowMenu presents a 1-indexed option list and blocks until the
// player picks one, by number or by case-insensitive text. Invalid
// input reprints the menu and retries; the only other way out is the
// input source running dry.
func (c *Controller) ShowMenu(options []string) (string, error) {
	for {
		for i, option := range options {
			fmt.Fprintf(c.Out, "%d) %s\n", i+1, option)
		}

		line, err := c.In.ReadLine()
		if err != nil {
			return "", fmt.Errorf("reading menu choice: %w", err)
		}

		idx, err := input.ParseChoice(options, line)
		if err != nil {
			fmt.Fprintf(c.Out, "%s\n\n", err.Error())
			continue
		}

		fmt.Fprintln(c.Out)
		return options[idx], nil
	}
}

// ShowMoveOptions presents the currently open directions and moves
// the player to the chosen one. A room with no open directions is
// reported like a failed move without reading any input.
func (c *Controller) ShowMoveOptions() (gameplay.MoveResult, error) {
	room := c.Session.GetCurrentRoom()

	var options []string
	if room != nil {
		for _, dir := range room.OpenDirections() {
			options = append(options, dir.String())
		}
	}

	if len(options) == 0 {
		c.Session.AddMessage(renderer.FormatString("GT{You can't move there}"))
		c.FlushMessages()
		return gameplay.NoSuchRoom, nil
	}

	fmt.Fprintln(c.Out, renderer.Underline(gotext.Get("Where will you move next?")))
	choice, err := c.ShowMenu(options)
	if err != nil {
		return gameplay.NoSuchRoom, err
	}

	result := gameplay.MoveDirection(c.Session, choice)
	c.FlushMessages()
	fmt.Fprintln(c.Out)
	return result, nil
}
