package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Run one appointment status reconciliation and exit",
	Long: `Однократная сверка: PENDING записи с прошедшим окончанием переводятся в CANCELED,
ACCEPTED в COMPLETED. Если аренду держит другая реплика, сверка пропускается.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		a, err := newApp(ctx, configPath)
		if err != nil {
			return err
		}
		defer a.Close()

		result := a.newScheduler().Reconcile(ctx)
		if result.Skipped {
			a.log.Warn("Reconciliation skipped: lease is held by another replica")
		}

		out, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}
