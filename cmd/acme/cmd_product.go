package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/acme/acme/app/models"
)

var (
	costFlag        string
	markupFlag      string
	descriptionFlag string
	companyFlag     string
	emailFlag       string
	messageFlag     string
)

// acme price
var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Calculate a suggested retail price from cost and markup percent",
	RunE: func(cmd *cobra.Command, args []string) error {
		cost, err := decimal.NewFromString(costFlag)
		if err != nil {
			return fmt.Errorf("invalid --cost %q: %w", costFlag, err)
		}
		markup, err := decimal.NewFromString(markupFlag)
		if err != nil {
			return fmt.Errorf("invalid --markup %q: %w", markupFlag, err)
		}

		p := models.NewBlankProduct()
		p.Cost = cost
		fmt.Fprintln(cmd.OutOrStdout(), p.CalculateSuggestedPrice(markup).String())
		return nil
	},
}

// acme hello
var helloCmd = &cobra.Command{
	Use:   "hello",
	Short: "Announce a product to sales",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := models.NewProduct(productIDFlag, productNameFlag, descriptionFlag)
		if !p.HasName() {
			return fmt.Errorf("invalid --name: %s", p.ValidationMessage())
		}
		fmt.Fprintln(cmd.OutOrStdout(), p.SayHello())
		return nil
	},
}

// acme welcome
var welcomeCmd = &cobra.Command{
	Use:   "welcome",
	Short: "Send a welcome email to a vendor",
	RunE: func(cmd *cobra.Command, args []string) error {
		v := &models.Vendor{CompanyName: companyFlag, Email: emailFlag}
		fmt.Fprintln(cmd.OutOrStdout(), v.SendWelcomeEmail(messageFlag))
		return nil
	},
}

func init() {
	priceCmd.Flags().StringVar(&costFlag, "cost", "0", "Product cost")
	priceCmd.Flags().StringVar(&markupFlag, "markup", "0", "Markup percent")

	helloCmd.Flags().IntVar(&productIDFlag, "product-id", 1, "Product ID")
	helloCmd.Flags().StringVar(&productNameFlag, "name", "", "Product name (3-20 characters)")
	helloCmd.Flags().StringVar(&descriptionFlag, "description", "", "Product description")

	welcomeCmd.Flags().StringVar(&companyFlag, "company", "", "Vendor company name")
	welcomeCmd.Flags().StringVar(&emailFlag, "email", "", "Vendor email address")
	welcomeCmd.Flags().StringVar(&messageFlag, "message", "Welcome aboard!", "Message body")
}
