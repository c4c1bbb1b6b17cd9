// Package main provides the quotation builder CLI.
// Usage: borequote create --customer "UBHEL" --item 'Boring 5":2:180'
//        borequote list
//        borequote duplicate <id>
//        borequote pdf <id>
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"borequote/internal/config"
	"borequote/internal/core/apperror"
	"borequote/internal/core/id"
	corenumerator "borequote/internal/core/numerator"
	"borequote/internal/core/types"
	"borequote/internal/domain/quotation"
	"borequote/internal/domain/quotation/pdf"
	pdfgen "borequote/internal/domain/quotation/pdf/gofpdf"
	"borequote/internal/domain/quotation/share"
	"borequote/internal/domain/reports"
	"borequote/internal/domain/settings"
	"borequote/internal/infrastructure/backup"
	"borequote/internal/infrastructure/numerator"
	"borequote/internal/infrastructure/storage"
	"borequote/internal/infrastructure/storage/jsonfile"
	"borequote/internal/infrastructure/storage/quotation_repo"
	"borequote/internal/infrastructure/storage/sqlite"
	"borequote/pkg/logger"
)

const dateLayout = "2006-01-02"

// app wires the services a command needs.
type app struct {
	cfg        *config.Config
	log        *logger.Logger
	quotations *quotation.Service
	settings   *settings.Service
	backups    *backup.Manager
	documents  pdf.Generator
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Development: cfg.Log.Development,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}

	provider, err := openProvider(cfg)
	if err != nil {
		log.Fatalw("open storage", "error", err)
	}
	defer provider.Close()

	numberCfg := corenumerator.Config{
		Prefix:   cfg.Numbering.Prefix,
		PadWidth: cfg.Numbering.PadWidth,
	}
	a := &app{
		cfg:        cfg,
		log:        log,
		quotations: quotation.NewService(quotation_repo.New(provider), numerator.New(provider), numberCfg, log),
		settings:   settings.NewService(provider, log),
		backups:    backup.New(provider, cfg.Backup.Dir, cfg.Backup.Retention, log),
		documents: pdfgen.New(pdfgen.Options{
			CurrencySymbol: cfg.CurrencySymbol,
			FontDir:        cfg.PDF.FontDir,
		}),
	}

	ctx := logger.WithLogger(context.Background(), log)
	args := os.Args[2:]

	switch os.Args[1] {
	case "create":
		createQuotation(ctx, a, args)
	case "list":
		listQuotations(ctx, a, args)
	case "show":
		showQuotation(ctx, a, args)
	case "search":
		searchQuotations(ctx, a, args)
	case "duplicate":
		duplicateQuotation(ctx, a, args)
	case "delete":
		deleteQuotation(ctx, a, args)
	case "pdf":
		exportPDF(ctx, a, args)
	case "share":
		shareQuotation(ctx, a, args)
	case "export":
		exportHistory(ctx, a, args)
	case "settings":
		manageSettings(ctx, a, args)
	case "backup":
		manageBackups(ctx, a, args)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Borequote - borewell quotation builder

Usage:
  borequote <command> [options]

Commands:
  create     Create and save a new quotation
  list       List all quotations
  show       Show one quotation
  search     Search by customer name or quotation number
  duplicate  Clone a quotation under a new number
  delete     Delete a quotation
  pdf        Write the quotation PDF
  share      Print WhatsApp/email text and deep link
  export     Write the history spreadsheet
  settings   Show or edit the business card and item templates
  backup     Create, list, or restore snapshots
  help       Show this help

Environment Variables:
  BOREQUOTE_DATA_DIR          Data directory (default ./data)
  BOREQUOTE_STORAGE           Storage backend: jsonfile or sqlite
  BOREQUOTE_CURRENCY_SYMBOL   Currency symbol for display

Examples:
  borequote create --customer "UBHEL" --item 'Boring 5":2:180' --item 'Casing ISO:1:450'
  borequote search ubhel
  borequote pdf BQ260001`)
}

func openProvider(cfg *config.Config) (storage.Provider, error) {
	switch cfg.Storage {
	case "sqlite":
		return sqlite.New(filepath.Join(cfg.DataDir, "borequote.db"))
	case "jsonfile", "":
		return jsonfile.New(cfg.DataDir)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage)
	}
}

// itemSpecs collects repeatable --item flags of the form name:qty:price.
type itemSpecs []string

func (s *itemSpecs) String() string { return strings.Join(*s, ", ") }

func (s *itemSpecs) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// parseItem splits "name:qty:price" from the right so names may contain
// colons. Invalid quantity or price degrades to zero.
func parseItem(spec string) (quotation.Item, error) {
	last := strings.LastIndex(spec, ":")
	if last < 1 {
		return quotation.Item{}, fmt.Errorf("item %q: want name:qty:price", spec)
	}
	mid := strings.LastIndex(spec[:last], ":")
	if mid < 1 {
		return quotation.Item{}, fmt.Errorf("item %q: want name:qty:price", spec)
	}

	name := spec[:mid]
	qty := types.ParseAmount(spec[mid+1 : last])
	price := types.ParseAmount(spec[last+1:])
	return quotation.NewItem(name, qty, price), nil
}

func createQuotation(ctx context.Context, a *app, args []string) {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	customer := fs.String("customer", "", "customer name (required)")
	date := fs.String("date", "", "quotation date YYYY-MM-DD (default today)")
	notes := fs.String("notes", "", "notes block (default warranty boilerplate)")
	var specs itemSpecs
	fs.Var(&specs, "item", "line item name:qty:price (repeatable)")
	fs.Parse(args)

	var items []quotation.Item
	for _, spec := range specs {
		item, err := parseItem(spec)
		if err != nil {
			fail(err)
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		// Fall back to the saved templates, the way a fresh form opens.
		prefilled, err := a.settings.PrefillItems(ctx)
		if err != nil {
			fail(err)
		}
		items = prefilled
	}

	in := quotation.CreateInput{
		CustomerName: *customer,
		Items:        items,
		Notes:        *notes,
	}
	if *date != "" {
		parsed, err := time.ParseInLocation(dateLayout, *date, time.Local)
		if err != nil {
			fail(fmt.Errorf("invalid date %q: %w", *date, err))
		}
		in.Date = parsed
	}

	q, err := a.quotations.Create(ctx, in)
	if err != nil {
		fail(err)
	}
	if err := a.quotations.Save(ctx, q); err != nil {
		fail(err)
	}

	fmt.Printf("Saved quotation %s for %s, total %s\n",
		q.QuotationNumber, q.CustomerName, amount(a, q.Total))
	fmt.Printf("id: %s\n", q.ID)
}

func listQuotations(ctx context.Context, a *app, _ []string) {
	all, err := a.quotations.List(ctx)
	if err != nil {
		fail(err)
	}
	printTable(a, all)
}

func searchQuotations(ctx context.Context, a *app, args []string) {
	query := strings.Join(args, " ")
	matched, err := a.quotations.Search(ctx, query)
	if err != nil {
		fail(err)
	}
	printTable(a, matched)
}

func showQuotation(ctx context.Context, a *app, args []string) {
	q := resolve(ctx, a, args)
	fmt.Printf("Quotation No: %s\n", q.QuotationNumber)
	fmt.Printf("Customer:     %s\n", q.CustomerName)
	fmt.Printf("Date:         %s\n", q.Date.Format(dateLayout))
	fmt.Printf("id:           %s\n\n", q.ID)
	for _, it := range q.Items {
		fmt.Printf("  %-30s %8s x %12s = %12s\n",
			it.Name, it.Quantity.String(), amount(a, it.PricePerUnit), amount(a, it.ExtendedPrice()))
	}
	fmt.Printf("\nTotal: %s\n", amount(a, q.Total))
	if q.Notes != "" {
		fmt.Printf("\n%s\n", q.Notes)
	}
}

func duplicateQuotation(ctx context.Context, a *app, args []string) {
	q := resolve(ctx, a, args)
	clone, err := a.quotations.Duplicate(ctx, q.ID)
	if err != nil {
		fail(err)
	}
	fmt.Printf("Duplicated %s as %s (id %s)\n", q.QuotationNumber, clone.QuotationNumber, clone.ID)
}

func deleteQuotation(ctx context.Context, a *app, args []string) {
	q := resolve(ctx, a, args)
	if err := a.quotations.Remove(ctx, q.ID); err != nil {
		fail(err)
	}
	fmt.Printf("Deleted %s\n", q.QuotationNumber)
}

func exportPDF(ctx context.Context, a *app, args []string) {
	fs := flag.NewFlagSet("pdf", flag.ExitOnError)
	outDir := fs.String("out", ".", "output directory")
	fs.Parse(args)

	q := resolve(ctx, a, fs.Args())
	stored, err := a.settings.Get(ctx)
	if err != nil {
		fail(err)
	}

	data, err := a.documents.Generate(*q, stored.BusinessCard)
	if err != nil {
		fail(err)
	}
	path := filepath.Join(*outDir, pdf.Filename(*q))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		fail(err)
	}
	fmt.Printf("Wrote %s\n", path)
}

func shareQuotation(ctx context.Context, a *app, args []string) {
	fs := flag.NewFlagSet("share", flag.ExitOnError)
	channel := fs.String("channel", "whatsapp", "whatsapp or email")
	fs.Parse(args)

	q := resolve(ctx, a, fs.Args())
	symbol := a.cfg.CurrencySymbol

	switch *channel {
	case "whatsapp":
		fmt.Println(share.WhatsAppText(*q, symbol))
		fmt.Printf("\n%s\n", share.WhatsAppLink(*q, symbol))
	case "email":
		subject, body := share.EmailMessage(*q, symbol)
		fmt.Printf("Subject: %s\n\n%s\n", subject, body)
		fmt.Printf("\n%s\n", share.MailtoLink(*q, symbol))
	default:
		fail(fmt.Errorf("unknown channel %q", *channel))
	}
}

func exportHistory(ctx context.Context, a *app, args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	out := fs.String("out", "quotations.xlsx", "output file")
	fs.Parse(args)

	all, err := a.quotations.List(ctx)
	if err != nil {
		fail(err)
	}

	f, err := os.Create(*out)
	if err != nil {
		fail(err)
	}
	defer f.Close()
	if err := reports.WriteQuotationsXLSX(f, all, a.cfg.CurrencySymbol); err != nil {
		fail(err)
	}
	fmt.Printf("Wrote %s (%d quotations)\n", *out, len(all))
}

func manageSettings(ctx context.Context, a *app, args []string) {
	if len(args) == 0 {
		args = []string{"show"}
	}
	switch args[0] {
	case "show":
		stored, err := a.settings.Get(ctx)
		if err != nil {
			fail(err)
		}
		card := stored.BusinessCard
		fmt.Printf("%s\n%s\n%s | %s\n%s\n\nTemplates:\n",
			card.CompanyName, card.OwnerName, card.Phone, card.Email, card.Address)
		for _, tpl := range stored.DefaultItems {
			fmt.Printf("  %-30s %12s  (%s)\n", tpl.Name, amount(a, tpl.PricePerUnit), tpl.ID)
		}
	case "card":
		editCard(ctx, a, args[1:])
	case "template":
		editTemplates(ctx, a, args[1:])
	default:
		fail(fmt.Errorf("unknown settings subcommand %q", args[0]))
	}
}

func editCard(ctx context.Context, a *app, args []string) {
	fs := flag.NewFlagSet("settings card", flag.ExitOnError)
	company := fs.String("company", "", "company name")
	owner := fs.String("owner", "", "owner/contact name")
	phone := fs.String("phone", "", "phone number")
	email := fs.String("email", "", "email")
	address := fs.String("address", "", "address")
	fs.Parse(args)

	stored, err := a.settings.Get(ctx)
	if err != nil {
		fail(err)
	}
	if *company != "" {
		stored.BusinessCard.CompanyName = *company
	}
	if *owner != "" {
		stored.BusinessCard.OwnerName = *owner
	}
	if *phone != "" {
		stored.BusinessCard.Phone = *phone
	}
	if *email != "" {
		stored.BusinessCard.Email = *email
	}
	if *address != "" {
		stored.BusinessCard.Address = *address
	}
	if err := a.settings.Save(ctx, stored); err != nil {
		fail(err)
	}
	fmt.Println("Business card saved")
}

func editTemplates(ctx context.Context, a *app, args []string) {
	fs := flag.NewFlagSet("settings template", flag.ExitOnError)
	add := fs.String("add", "", "add template name:price")
	remove := fs.String("remove", "", "remove template by id")
	fs.Parse(args)

	stored, err := a.settings.Get(ctx)
	if err != nil {
		fail(err)
	}

	switch {
	case *add != "":
		sep := strings.LastIndex(*add, ":")
		if sep < 1 {
			fail(fmt.Errorf("template %q: want name:price", *add))
		}
		stored.DefaultItems = append(stored.DefaultItems, settings.ItemTemplate{
			ID:           id.New(),
			Name:         (*add)[:sep],
			PricePerUnit: types.ParseAmount((*add)[sep+1:]),
		})
	case *remove != "":
		tplID, err := id.Parse(*remove)
		if err != nil {
			fail(fmt.Errorf("invalid template id %q", *remove))
		}
		kept := stored.DefaultItems[:0]
		for _, tpl := range stored.DefaultItems {
			if tpl.ID != tplID {
				kept = append(kept, tpl)
			}
		}
		stored.DefaultItems = kept
	default:
		fail(fmt.Errorf("settings template needs --add or --remove"))
	}

	if err := a.settings.Save(ctx, stored); err != nil {
		fail(err)
	}
	fmt.Println("Templates saved")
}

func manageBackups(ctx context.Context, a *app, args []string) {
	if len(args) == 0 {
		args = []string{"create"}
	}
	switch args[0] {
	case "create":
		path, err := a.backups.Create(ctx)
		if err != nil {
			fail(err)
		}
		fmt.Printf("Wrote %s\n", path)
	case "list":
		paths, err := a.backups.List()
		if err != nil {
			fail(err)
		}
		for _, path := range paths {
			fmt.Println(path)
		}
	case "restore":
		if len(args) < 2 {
			fail(fmt.Errorf("backup restore needs a snapshot path"))
		}
		if err := a.backups.Restore(ctx, args[1]); err != nil {
			fail(err)
		}
		fmt.Printf("Restored %s\n", args[1])
	default:
		fail(fmt.Errorf("unknown backup subcommand %q", args[0]))
	}
}

// resolve finds one quotation by record id or quotation number.
func resolve(ctx context.Context, a *app, args []string) *quotation.Quotation {
	if len(args) < 1 {
		fail(fmt.Errorf("missing quotation id or number"))
	}
	key := args[0]

	if recordID, err := id.Parse(key); err == nil {
		q, err := a.quotations.Get(ctx, recordID)
		if err != nil {
			fail(err)
		}
		return q
	}

	all, err := a.quotations.List(ctx)
	if err != nil {
		fail(err)
	}
	for i := range all {
		if strings.EqualFold(all[i].QuotationNumber, key) {
			return &all[i]
		}
	}
	fail(apperror.NewNotFound("quotation", key))
	return nil
}

func printTable(a *app, quotations []quotation.Quotation) {
	if len(quotations) == 0 {
		fmt.Println("No quotations")
		return
	}
	fmt.Printf("%-10s %-12s %-25s %5s %14s\n", "Number", "Date", "Customer", "Items", "Total")
	for _, q := range quotations {
		fmt.Printf("%-10s %-12s %-25s %5d %14s\n",
			q.QuotationNumber, q.Date.Format(dateLayout), q.CustomerName,
			len(q.Items), amount(a, q.Total))
	}
}

func amount(a *app, v types.Money) string {
	return types.FormatAmount(a.cfg.CurrencySymbol, v)
}

func fail(err error) {
	if appErr, ok := apperror.AsAppError(err); ok {
		fmt.Fprintf(os.Stderr, "Error: %s\n", appErr.Message)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(1)
}
