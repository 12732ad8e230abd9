package cmd

import (
	"fmt"

	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/beanboi7/chyp8/emu/driver"
	"github.com/beanboi7/chyp8/emu/rom"
	"github.com/beanboi7/chyp8/emu/screen"
	"github.com/beanboi7/chyp8/emu/sound"
	"github.com/beanboi7/chyp8/emu/statsview"
	"github.com/faiface/pixel/pixelgl"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var startCmd = &cobra.Command{
	Use:   "start `path/ROM`",
	Short: "load and start the Emulator",
	Args:  cobra.ExactArgs(1),
	RunE:  Start,
}

// chyp8 start 'path/to/ROM' -r 60 -c 700
func Start(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Debug, cfg.Quiet)

	romPath := args[0]
	image, err := rom.Read(romPath)
	if err != nil {
		return err
	}

	emu := cpu.New(
		cpu.WithRandom(cpu.NewRandom(cfg.Seed)),
		cpu.WithLogger(logger, cfg.Trace),
	)
	if err := emu.LoadProgram(image); err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}
	logger.Info("Loaded ROM", log.String("file", romPath), log.Int("size", len(image)))

	beeper, closeBeeper := newBeeper(cfg.Mute, logger)
	defer closeBeeper()

	if cfg.StatsView {
		statsview.Launch(logger, cfg.StatsViewAddr)
	}

	return withFrontend(cfg.Frontend, logger, func(frontend driver.Frontend) error {
		d := driver.Driver{
			Machine:  emu,
			Frontend: frontend,
			Beeper:   beeper,
			Logger:   logger,
			Clock:    cfg.Clock,
			Refresh:  cfg.Refresh,
		}
		return d.Run(app.Context())
	})
}

// runOnMainThread hands the window frontend to the GL main thread.
var runOnMainThread = pixelgl.Run

// withFrontend opens the named frontend, passes it to run and closes it again.
// Only the pixel frontend enters pixelgl, so the terminal frontend works
// without a display.
func withFrontend(name string, logger *log.Logger, run func(driver.Frontend) error) error {
	if name == frontendTerminal {
		t, err := screen.NewTerminal(logger)
		if err != nil {
			return fmt.Errorf("opening terminal: %w", err)
		}
		defer func() {
			if err := t.Close(); err != nil {
				logger.Error("Closing terminal failed", log.Err(err))
			}
		}()
		return run(t)
	}

	var err error
	runOnMainThread(func() {
		win, winErr := screen.NewWindow()
		if winErr != nil {
			err = winErr
			return
		}
		defer win.Destroy()
		err = run(win)
	})
	return err
}

func newBeeper(mute bool, logger *log.Logger) (driver.Beeper, func()) {
	if mute {
		return sound.Mute{}, func() {}
	}

	beeper, err := sound.NewBeeper()
	if err != nil {
		logger.Warn("Audio unavailable, continuing without sound", log.Err(err))
		return sound.Mute{}, func() {}
	}
	return beeper, beeper.Close
}

func init() {
	rootCmd.AddCommand(startCmd)

	flags := startCmd.Flags()
	flags.IntP("refresh", "r", 60, "sets the refresh rate of the display in Hz")
	flags.IntP("clock", "c", 700, "instructions executed per second")
	flags.StringP("frontend", "f", frontendPixel, "frontend to use: pixel or terminal")
	flags.Bool("mute", false, "disable the beeper")
	flags.Int64("seed", 0, "seed of the random number generator, 0 picks one")
	flags.Bool("trace", false, "log every executed instruction, needs --debug")
	flags.Bool("statsview", false, "serve runtime statistics over HTTP")
	flags.String("statsview-addr", statsview.DefaultAddress, "address of the statistics server")

	for _, name := range []string{"refresh", "clock", "frontend", "mute", "seed", "trace", "statsview", "statsview-addr"} {
		cobra.CheckErr(viper.BindPFlag(name, flags.Lookup(name)))
	}
}
