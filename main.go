package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/leonelquinteros/gotext"
	"go.uber.org/zap"

	"spookymanor/pkg/config"
	"spookymanor/pkg/engine/terminal"
	"spookymanor/pkg/game/gameplay"
	"spookymanor/pkg/game/menu"
	"spookymanor/pkg/game/renderer"
	"spookymanor/pkg/game/setup"
	"spookymanor/pkg/game/state"
	"spookymanor/pkg/observability"
)

const ghostArt = `
                 .-.
                /aa \_
              __\-  / )          .-.
     .-.     (__/    /         _/oo \
   _/ ..\      /     \        ( \v  /__
  ( \  u/__   /       \__      \/   ___)
   \    \__)  \_.-._._   )     /     \
   /     \            '-'     /       \_
  __/      \                  \_.-.__   )
 (   _._.-._/                        '-'
  '-'
`

func main() {
	configPath := flag.String("config", "", "path to an optional config file")
	noColor := flag.Bool("no-color", false, "disable ANSI styling")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "spookymanor: %v\n", err)
		os.Exit(1)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "spookymanor: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ansi := colorsEnabled(cfg.Display.ColorMode) && !*noColor
	renderer.InitColors(ansi)

	if cfg.Display.Locale != "" {
		gotext.Configure(cfg.Display.LocaleDir, cfg.Display.Locale, "default")
	}

	sess := state.NewSession()
	sess.Logger = logger
	setup.BuildManor(sess)
	logger.Info("manor built",
		zap.Int("friends", sess.RemainingFriendCount()),
		zap.String("start", sess.GetCurrentRoom().Name))

	ctl := menu.NewController(sess, os.Stdin, os.Stdout)

	enterTheManor(ctl, cfg, ansi)

	for ctl.RemainingFriends() > 0 {
		gameplay.LookAround(sess)
		ctl.FlushMessages()

		if _, err := ctl.ShowMoveOptions(); err != nil {
			logger.Info("input closed, ending session", zap.Error(err))
			return
		}
	}

	escapedTheManor(ctl, cfg)
}

func colorsEnabled(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return terminal.IsTerminal()
	}
}

// enterTheManor clears the screen and narrates the opening.
func enterTheManor(ctl *menu.Controller, cfg config.Config, ansi bool) {
	terminal.Clear(ctl.Out, ansi)

	intro := "While walking home from the movie theater with your three friends, you stop in front of an old house\n" +
		"that you don't remember seeing before. You and your friends decide to each explore the many rooms of\n" +
		"the house, but you soon realize that " + renderer.Yellow("the house is not as normal as it seems") + ".\n\n" +
		"You need to explore the different rooms of the house, find your friends and hidden items, and avoid\n" +
		"being caught by the mysterious owner of the house. Along the way, you will also find keys that will\n" +
		"unlock some of the rooms. Be careful, though, as some rooms may contain " + renderer.Green("surprises") + " or " + renderer.Pink("challenges") + "\n" +
		"that could make the game more fun or more difficult.\n\n" +
		renderer.Bold("\U0001F47B "+renderer.Red("Can you find all your friends and escape from the house before dawn?")+" \U0001F47B") + "\n\n"

	renderer.PrintSlow(ctl.Out, cfg.Display.TypewriterDelay, intro)

	gameplay.WhereAmI(ctl.Session)
	ctl.FlushMessages()
	fmt.Fprintln(ctl.Out)
}

// escapedTheManor narrates the ending once every friend is found.
func escapedTheManor(ctl *menu.Controller, cfg config.Config) {
	fmt.Fprint(ctl.Out, ghostArt+"\n")
	outro := renderer.Yellow("You found all of your friends!") + " Together you run for the front door,\n" +
		"and as it creaks open the first light of dawn spills into the foyer.\n\n" +
		renderer.Bold("\U0001F47B You escaped the manor. \U0001F47B") + "\n"
	renderer.PrintSlow(ctl.Out, cfg.Display.TypewriterDelay, outro)
}
