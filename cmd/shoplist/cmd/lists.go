package cmd

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/GriffinCanCode/ShopList/client/internal/domain/model"
	"github.com/spf13/cobra"
)

type listView struct {
	ID        string     `json:"id" yaml:"id"`
	Name      string     `json:"name" yaml:"name"`
	Type      string     `json:"type" yaml:"type"`
	CreatedAt string     `json:"created_at" yaml:"created_at"`
	Items     []itemView `json:"items" yaml:"items"`
}

type itemView struct {
	Name   string `json:"name" yaml:"name"`
	Status string `json:"status" yaml:"status"`
	Type   string `json:"type" yaml:"type"`
}

var errCreateFailed = errors.New("list not created")

func toListView(l model.ShoppingList) listView {
	items := make([]itemView, 0, len(l.Items))
	for _, it := range l.Items {
		items = append(items, itemView{Name: it.Name, Status: it.Status, Type: it.Type})
	}
	return listView{ID: l.ID, Name: l.Name, Type: l.Type, CreatedAt: l.CreatedAt, Items: items}
}

func newListsCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:     "lists",
		Aliases: []string{"ls"},
		Short:   "Show your shopping lists",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lists, err := rt.app.Shopping.GetShoppingLists(cmd.Context())
			if err != nil {
				return err
			}

			views := make([]listView, 0, len(lists))
			for _, l := range lists {
				views = append(views, toListView(l))
			}
			return rt.printer.print(views, func(tw *tabwriter.Writer) {
				if len(views) == 0 {
					fmt.Fprintln(tw, "No lists yet. Create one with `shoplist create NAME`.")
					return
				}
				fmt.Fprintln(tw, "ID\tNAME\tTYPE\tITEMS\tCREATED")
				for _, v := range views {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", v.ID, v.Name, v.Type, len(v.Items), v.CreatedAt)
				}
			})
		},
	}
}

func newListCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "list ID",
		Short: "Show a list and its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := rt.app.Shopping.GetShoppingListDetails(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printList(rt.printer, toListView(list))
		},
	}
}

func printList(p *printer, v listView) error {
	return p.print(v, func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "%s (%s, id %s)\n", v.Name, v.Type, v.ID)
		if len(v.Items) == 0 {
			fmt.Fprintln(tw, "No items.")
			return
		}
		fmt.Fprintln(tw, "ITEM\tSTATUS\tTYPE")
		for _, it := range v.Items {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", it.Name, it.Status, it.Type)
		}
	})
}

func newCreateCmd(rt *runtime) *cobra.Command {
	var listType string
	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a shopping list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := rt.app.Shopping.CreateShoppingList(cmd.Context(), strings.Join(args, " "), listType)
			if !res.OK() {
				return fmt.Errorf("%w: %s", errCreateFailed, res.Message)
			}
			return printList(rt.printer, toListView(*res.List))
		},
	}
	cmd.Flags().StringVar(&listType, "type", model.DefaultListType, "List type")
	return cmd
}

func newAddCmd(rt *runtime) *cobra.Command {
	var (
		item           model.AddItemRequest
		price          float64
		quantity, year int

		url, store, notes, platform, genre, rating, due, priority string
	)
	cmd := &cobra.Command{
		Use:   "add LIST_ID NAME",
		Short: "Add an item to a list",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			item.Name = strings.Join(args[1:], " ")

			f := cmd.Flags()
			if f.Changed("price") {
				item.Price = &price
			}
			if f.Changed("quantity") {
				item.Quantity = &quantity
			}
			if f.Changed("year") {
				item.Year = &year
			}
			optional := func(flag string, v string, dst **string) {
				if f.Changed(flag) {
					*dst = &v
				}
			}
			optional("url", url, &item.URL)
			optional("store", store, &item.Store)
			optional("notes", notes, &item.Notes)
			optional("platform", platform, &item.Platform)
			optional("genre", genre, &item.Genre)
			optional("rating", rating, &item.Rating)
			optional("due-date", due, &item.DueDate)
			optional("priority", priority, &item.Priority)

			list, err := rt.app.Shopping.AddItemToList(cmd.Context(), args[0], item)
			if err != nil {
				return err
			}
			return printList(rt.printer, toListView(list))
		},
	}

	f := cmd.Flags()
	f.StringVar(&item.ListType, "type", model.DefaultListType, "Item type, matching the list type")
	f.Float64Var(&price, "price", 0, "Price")
	f.IntVar(&quantity, "quantity", 0, "Quantity")
	f.IntVar(&year, "year", 0, "Release year")
	f.StringVar(&url, "url", "", "Product link")
	f.StringVar(&store, "store", "", "Store")
	f.StringVar(&notes, "notes", "", "Notes")
	f.StringVar(&platform, "platform", "", "Platform")
	f.StringVar(&genre, "genre", "", "Genre")
	f.StringVar(&rating, "rating", "", "Rating")
	f.StringVar(&due, "due-date", "", "Due date")
	f.StringVar(&priority, "priority", "", "Priority")
	return cmd
}

func newDeleteCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:     "delete ID",
		Aliases: []string{"rm"},
		Short:   "Delete a shopping list",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rt.app.Shopping.DeleteShoppingList(cmd.Context(), args[0]); err != nil {
				return err
			}
			return rt.printer.message(fmt.Sprintf("Deleted list %s.", args[0]))
		},
	}
}
