package cmd

import (
	"context"
	"errors"

	"github.com/jfox91/gimme/internal/dcim"
	"github.com/jfox91/gimme/internal/exit"
	"github.com/jfox91/gimme/internal/output"
	"github.com/spf13/cobra"
)

func newNautoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nauto",
		Short: "Query the DCIM system for device records",
	}
	cmd.AddCommand(newNautoFieldCmd("status", "Show a device's operational status",
		func(ctx context.Context, client *dcim.Client, name string) (string, error) {
			return client.DeviceStatus(ctx, name)
		}))
	cmd.AddCommand(newNautoFieldCmd("rack", "Show a device's rack location",
		func(ctx context.Context, client *dcim.Client, name string) (string, error) {
			return client.RackLocation(ctx, name)
		}))
	cmd.AddCommand(newNautoFieldCmd("notes", "Show the notes recorded for a device",
		func(ctx context.Context, client *dcim.Client, name string) (string, error) {
			return client.Notes(ctx, name)
		}))
	return cmd
}

type dcimFetch func(ctx context.Context, client *dcim.Client, name string) (string, error)

func newNautoFieldCmd(name, short string, fetch dcimFetch) *cobra.Command {
	var outputMode string
	cmd := &cobra.Command{
		Use:   name + " <node>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := output.ParseMode(outputMode)
			if err != nil {
				return exit.New(exit.CodeUsage, err)
			}
			cfg, err := loadConfig()
			if err != nil {
				return exit.New(exit.CodeUsage, err)
			}
			client, err := dcim.NewClient(cfg.DCIMURL, cfg.DCIMToken)
			if err != nil {
				return exit.New(exit.CodeUsage, err)
			}

			value, err := fetch(cmd.Context(), client, args[0])
			if err != nil {
				return dcimExit(err)
			}
			if err := output.RenderDCIMValue(args[0], name, value, mode); err != nil {
				return exit.New(exit.CodeUsage, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&outputMode, "output", "table", "output format: table|json|yaml")
	return cmd
}

func dcimExit(err error) error {
	var notFound *dcim.NotFoundError
	if errors.As(err, &notFound) {
		return exit.New(exit.CodeUsage, err)
	}
	return exit.New(exit.CodeAdapter, err)
}
