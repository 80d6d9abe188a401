package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rl1809/pinkstock/internal/adapter/presenter"
	"github.com/rl1809/pinkstock/internal/core/domain"
	"github.com/rl1809/pinkstock/internal/core/service"
	"github.com/rl1809/pinkstock/internal/core/view"
)

func (a *app) listCmd() *cobra.Command {
	var filter view.Filter
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List items, most recently added first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			presenter.RenderItems(cmd.OutOrStdout(), a.inventory.Filter(filter))
			return nil
		},
	}
	cmd.Flags().StringVar(&filter.Search, "search", "", "only items whose name contains this text (case-insensitive)")
	cmd.Flags().StringVar(&filter.Category, "category", "", "only items in this exact category")
	cmd.Flags().BoolVar(&filter.LowStockOnly, "low-stock", false, fmt.Sprintf("only items with fewer than %d units", view.LowStockThreshold))
	return cmd
}

func (a *app) addCmd() *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "add NAME QUANTITY",
		Short: "Add a new item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			quantity, err := domain.ParseQuantity(args[1])
			if err != nil {
				return err
			}
			newItem := domain.NewItem{Name: args[0], Quantity: quantity, Category: category}
			if err := newItem.Validate(); err != nil {
				return err
			}

			id, err := a.inventory.AddItem(cmd.Context(), newItem)
			if err := warnIfNotPersisted(cmd.ErrOrStderr(), err); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %s\n", id)
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "optional category label")
	return cmd
}

func (a *app) adjustCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "adjust ID DELTA",
		Short: "Change an item's quantity by DELTA (never below zero)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			delta, err := strconv.Atoi(args[1])
			if err != nil {
				return &domain.ValidationError{Field: "delta", Reason: fmt.Sprintf("%q is not a whole number", args[1])}
			}

			item, err := a.inventory.AdjustQuantity(cmd.Context(), args[0], delta)
			if err := warnIfNotPersisted(cmd.ErrOrStderr(), err); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d\n", item.Name, item.Quantity)
			return nil
		},
	}
	// Stop flag parsing at ID so a negative DELTA is read as an argument.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func (a *app) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an item permanently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := a.inventory.DeleteItem(cmd.Context(), args[0])
			if err := warnIfNotPersisted(cmd.ErrOrStderr(), err); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	}
}

func (a *app) categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the categories in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			presenter.RenderCategories(cmd.OutOrStdout(), a.inventory.ListCategories())
			return nil
		},
	}
}

func (a *app) summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show item, quantity and low stock totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			presenter.RenderSummary(cmd.OutOrStdout(), a.inventory.Summary())
			return nil
		},
	}
}

// warnIfNotPersisted prints a warning and swallows err when the change was
// only applied in memory. Any other error is returned unchanged.
func warnIfNotPersisted(w io.Writer, err error) error {
	if errors.Is(err, service.ErrNotPersisted) {
		fmt.Fprintf(w, "warning: %v\n", err)
		return nil
	}
	return err
}
