package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/greyfell/monres"
)

func newProbeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Run the raw platform probe once and print the result",
		Long: "Runs the detected platform probe without override or fallback\n" +
			"policy. A probe failure exits non-zero with the underlying error,\n" +
			"which is useful for diagnosing degraded resolutions.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := newViper(cmd)
			if err != nil {
				return err
			}
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			setupLogging(cfg)

			probe := monres.DetectProbe()
			res, mon, err := probe.Probe()
			if err != nil {
				return fmt.Errorf("probe %q failed: %w", probe.Name(), err)
			}

			line := fmt.Sprintf("%s via %s probe", res, probe.Name())
			if mon.Name != "" {
				line += fmt.Sprintf(" (monitor %s", mon.Name)
				if mon.Primary {
					line += ", primary"
				}
				line += ")"
			}
			fmt.Println(line)
			return nil
		},
	}
}
