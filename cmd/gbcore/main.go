// Command gbcore is the host-level runner for the SM83 core: it loads a ROM
// off disk, drives the CPU for a bounded number of steps (or until a
// wall-clock timeout), and optionally streams an execution trace. It is the
// one place DecodeFatal/OperandMisuse panics are recovered and reported as a
// clean fatal exit, and the one place ROM bytes are read from disk.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jberkenbilt/gbcore/internal/bus"
	"github.com/jberkenbilt/gbcore/internal/cart"
	"github.com/jberkenbilt/gbcore/internal/cpu"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gbcore",
		Short: "SM83 CPU interpreter and memory bus core",
	}
	rootCmd.AddCommand(newRunCmd(), newHeaderCmd())
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRunCmd() *cobra.Command {
	var steps int
	var startPC uint16
	var trace bool
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "run <rom>",
		Short: "Run a ROM for a bounded number of steps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			defer func() {
				if r := recover(); r != nil {
					switch e := r.(type) {
					case cpu.DecodeFatal, cpu.OperandMisuse:
						err = fmt.Errorf("%v", e)
					default:
						panic(r)
					}
				}
			}()

			rom, readErr := os.ReadFile(args[0])
			if readErr != nil {
				return fmt.Errorf("read rom: %w", readErr)
			}

			b := bus.New(rom)
			c := cpu.New(b)
			c.SetPC(startPC)
			if trace {
				c.SetTraceSink(cmd.OutOrStdout())
			}

			start := time.Now()
			var deadline time.Time
			if timeout > 0 {
				deadline = start.Add(timeout)
			}

			var cycles int
			for i := 0; i < steps; i++ {
				cycles += c.Step()
				if !deadline.IsZero() && time.Now().After(deadline) {
					fmt.Fprintf(cmd.OutOrStdout(), "timeout after %s\n", time.Since(start).Truncate(time.Millisecond))
					break
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "done: steps=%d cycles=%d elapsed=%s\n",
				steps, cycles, time.Since(start).Truncate(time.Millisecond))
			return nil
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 5_000_000, "max CPU steps to run")
	cmd.Flags().Uint16Var(&startPC, "pc", 0x0100, "initial PC value")
	cmd.Flags().BoolVar(&trace, "trace", false, "write a per-instruction trace to stdout")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "optional wall-clock timeout (e.g. 30s, 2m); 0 disables")
	return cmd
}

func newHeaderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "header <rom>",
		Short: "Parse and print the cartridge header",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rom, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read rom: %w", err)
			}
			h, err := cart.ParseHeader(rom)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Title:          %s\n", h.Title)
			fmt.Fprintf(out, "Cartridge type: %s (0x%02X)\n", h.CartTypeStr, h.CartType)
			fmt.Fprintf(out, "ROM size:       %d bytes (%d banks)\n", h.ROMSizeBytes, h.ROMBanks)
			fmt.Fprintf(out, "RAM size:       %d bytes\n", h.RAMSizeBytes)
			fmt.Fprintf(out, "Logo valid:     %t\n", h.LogoValid)
			fmt.Fprintf(out, "Header checksum OK: %t\n", cart.HeaderChecksumOK(rom))
			return nil
		},
	}
}

func init() {
	log.SetFlags(0)
}
