package notify

import (
	"bytes"
	"embed"
	"fmt"
	"strconv"
	"text/template"

	"backma/pkg/domain"
	"backma/pkg/mailer"
)

// Template names an email template. Every template defines "<name>.subject"
// and "<name>.body".
type Template string

const (
	TemplatePurchaseStatus       Template = "purchase_status"
	TemplateDisputeOpened        Template = "dispute_opened"
	TemplateDisputeClosed        Template = "dispute_closed"
	TemplateBalanceRequest       Template = "balance_request"
	TemplateServiceRequestStatus Template = "service_request_status"
	TemplateWebsiteModerated     Template = "website_moderated"
	TemplateListingModerated     Template = "listing_moderated"
	TemplateAdminDigest          Template = "admin_digest"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must( //nolint: gochecknoglobals
	template.New("emails").Option("missingkey=zero").ParseFS(templateFS, "templates/*.tmpl"))

// Render builds the message for args.
func Render(args EmailArgs) (mailer.Message, error) {
	subject, err := execute(string(args.Template)+".subject", args.Data)
	if err != nil {
		return mailer.Message{}, err
	}
	body, err := execute(string(args.Template)+".body", args.Data)
	if err != nil {
		return mailer.Message{}, err
	}

	return mailer.Message{
		To:       args.To,
		Subject:  string(bytes.TrimSpace(subject)),
		Text:     string(bytes.TrimSpace(body)),
		Template: string(args.Template),
	}, nil
}

func execute(name string, data map[string]string) ([]byte, error) {
	t := templates.Lookup(name)
	if t == nil {
		return nil, fmt.Errorf("unknown email template %q", name)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("could not render %s: %w", name, err)
	}

	return buf.Bytes(), nil
}

// DigestData flattens the dashboard counters into admin digest template data.
func DigestData(o *domain.Overview) map[string]string {
	itoa := func(n int64) string { return strconv.FormatInt(n, 10) }

	return map[string]string{
		"Publishers":             itoa(o.UsersByRole[domain.RolePublisher]),
		"Advertisers":            itoa(o.UsersByRole[domain.RoleAdvertiser]),
		"TotalBalance":           o.TotalBalance.StringFixed(2),
		"CommissionEarned":       o.CommissionEarned.StringFixed(2),
		"CompletedVolume":        o.CompletedVolume.StringFixed(2),
		"PendingWebsites":        itoa(o.PendingWebsites),
		"PendingListings":        itoa(o.PendingListings),
		"PendingPurchases":       itoa(o.PendingPurchases),
		"OpenDisputes":           itoa(o.OpenDisputes),
		"PendingBalanceRequests": itoa(o.PendingBalanceRequests),
		"PendingServiceRequests": itoa(o.PendingServiceRequests),
	}
}
