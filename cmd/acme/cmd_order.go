package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/acme/acme/app/models"
	"github.com/acme/acme/pkg/result"
)

var (
	vendorIDFlag     int
	vendorEmailFlag  string
	productIDFlag    int
	productNameFlag  string
	productSeqFlag   int
	quantityFlag     int
	deliverByFlag    string
	instructionsFlag string
	addressFlag      bool
	copyFlag         bool
)

func addOrderFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&vendorIDFlag, "vendor-id", 1, "Vendor ID")
	cmd.Flags().StringVar(&vendorEmailFlag, "vendor-email", "", "Vendor email address")
	cmd.Flags().IntVar(&productIDFlag, "product-id", 1, "Product ID")
	cmd.Flags().StringVar(&productNameFlag, "name", "", "Product name (3-20 characters)")
	cmd.Flags().IntVar(&productSeqFlag, "sequence", 1, "Product sequence number")
	cmd.Flags().IntVarP(&quantityFlag, "quantity", "q", 1, "Quantity to order")
}

// acme order
var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Place an order with optional deliver-by date and instructions",
	RunE: func(cmd *cobra.Command, args []string) error {
		vendor, product, err := orderParties()
		if err != nil {
			return err
		}

		var opts []models.OrderOption
		if deliverByFlag != "" {
			t, err := time.ParseInLocation("2006-01-02", deliverByFlag, time.Local)
			if err != nil {
				return fmt.Errorf("invalid --deliver-by %q: %w", deliverByFlag, err)
			}
			opts = append(opts, models.DeliverBy(t))
		}
		if cmd.Flags().Changed("instructions") {
			opts = append(opts, models.Instructions(instructionsFlag))
		}

		res, err := vendor.PlaceOrder(product, quantityFlag, opts...)
		if err != nil {
			return err
		}
		printOrder(cmd, res)
		return nil
	},
}

// acme order:flags
var orderFlagsCmd = &cobra.Command{
	Use:   "order:flags",
	Short: "Place an order that may include the address and a customer copy",
	RunE: func(cmd *cobra.Command, args []string) error {
		vendor, product, err := orderParties()
		if err != nil {
			return err
		}

		includeAddress := models.IncludeAddressNo
		if addressFlag {
			includeAddress = models.IncludeAddressYes
		}
		sendCopy := models.SendCopyNo
		if copyFlag {
			sendCopy = models.SendCopyYes
		}

		res, err := vendor.PlaceOrderWithFlags(product, quantityFlag, includeAddress, sendCopy)
		if err != nil {
			return err
		}
		printOrder(cmd, res)
		return nil
	},
}

func init() {
	addOrderFlags(orderCmd)
	orderCmd.Flags().StringVar(&deliverByFlag, "deliver-by", "", "Deliver-by date (YYYY-MM-DD)")
	orderCmd.Flags().StringVar(&instructionsFlag, "instructions", models.DefaultInstructions, "Delivery instructions; empty omits the line")

	addOrderFlags(orderFlagsCmd)
	orderFlagsCmd.Flags().BoolVar(&addressFlag, "address", false, "Include the shipping address")
	orderFlagsCmd.Flags().BoolVar(&copyFlag, "copy", false, "Send a copy to the customer")
}

func orderParties() (*models.Vendor, *models.Product, error) {
	if strings.TrimSpace(vendorEmailFlag) == "" {
		return nil, nil, fmt.Errorf("--vendor-email is required")
	}

	product := models.NewProduct(productIDFlag, productNameFlag, "")
	if !product.HasName() {
		return nil, nil, fmt.Errorf("invalid --name: %s", product.ValidationMessage())
	}
	product.SequenceNumber = productSeqFlag

	vendor := &models.Vendor{ID: vendorIDFlag, Email: vendorEmailFlag}
	product.SetVendor(vendor)
	return vendor, product, nil
}

func printOrder(cmd *cobra.Command, res result.OperationResult[bool]) {
	out := cmd.OutOrStdout()
	status := "sent"
	if !res.Result {
		status = "NOT sent"
	}
	fmt.Fprintf(out, "Order %s\n%s\n", status, res.Message)
}
