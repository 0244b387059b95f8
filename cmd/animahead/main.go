package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/calvinmclean/animahead"
	"github.com/calvinmclean/animahead/choreography"
	"github.com/calvinmclean/animahead/display"
	"github.com/calvinmclean/animahead/eyes"
	"github.com/calvinmclean/animahead/monitor"
	"github.com/calvinmclean/animahead/motion"
	"github.com/calvinmclean/animahead/sim"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	err := newRootCommand().ExecuteContext(ctx)
	if err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "animahead",
		Short: "Host tools for the animatronic head",
	}

	root.AddCommand(newSimCommand(), newMonitorCommand(), newPortsCommand())
	return root
}

func newSimCommand() *cobra.Command {
	cfg := sim.DefaultConfig
	var verbose bool

	cmd := &cobra.Command{
		Use:   "sim",
		Short: "Run the choreography in a desktop window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cfg.Speed <= 0 {
				return fmt.Errorf("invalid speed: %v", cfg.Speed)
			}

			sim.Run(cmd.Context(), cfg, cmd.OutOrStdout(), func(d sim.Devices) {
				log := animahead.NewLogger(d.Log)
				if verbose {
					log.Verbose()
				}

				panel := display.NewPanel(d.Screen)
				animator := eyes.NewAnimator(panel, eyes.DefaultGeometry, d.Sleeper, log)
				controller := motion.New(d.Base, d.Head, motion.DefaultConfig, d.Sleeper, log)

				choreography.New(controller, animator, panel, d.Sleeper, log).Run()
			})
			return nil
		},
	}

	cmd.Flags().Float64Var(&cfg.Speed, "speed", cfg.Speed, "Clock speed multiplier, 2 runs twice as fast")
	cmd.Flags().Float32Var(&cfg.Scale, "scale", cfg.Scale, "Size of one display pixel")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every servo write")
	return cmd
}

func newMonitorCommand() *cobra.Command {
	var port string
	var baud int

	cmd := &cobra.Command{
		Use:   "monitor",
		Short: "Follow the log of a connected head over USB serial",
		Long:  "Follow the log of a connected head over USB serial. SERIAL_PORT and BAUD_RATE are read first and flags override them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := monitor.NewConfig(port, baud)
			if err != nil {
				return err
			}

			m, err := monitor.New(cfg)
			if err != nil {
				return err
			}
			defer m.Close()

			return m.Run(cmd.Context(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "Serial port of the head")
	cmd.Flags().IntVarP(&baud, "baud", "b", 0, "Baud rate")
	return cmd
}

func newPortsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ports",
		Short: "List USB serial ports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ports, err := monitor.GetSerialPorts()
			if errors.Is(err, monitor.ErrNoUSBSerial) {
				fmt.Fprintln(cmd.OutOrStdout(), monitor.SerialPortNone)
				return nil
			}
			if err != nil {
				return err
			}

			for _, p := range ports {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
}
