package email

const leadNotificationTemplate = `
{{define "lead_notification"}}
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
    <h2>New Inquiry{{if .ListingTitle}} for {{.ListingTitle}}{{end}}</h2>
    <table style="width: 100%; border-collapse: collapse;">
        <tr><td style="padding: 8px; font-weight: bold;">Name</td><td style="padding: 8px;">{{.LeadName}}</td></tr>
        <tr><td style="padding: 8px; font-weight: bold;">Email</td><td style="padding: 8px;">{{.LeadEmail}}</td></tr>
        {{if .LeadPhone}}<tr><td style="padding: 8px; font-weight: bold;">Phone</td><td style="padding: 8px;">{{.LeadPhone}}</td></tr>{{end}}
        {{if .LeadSource}}<tr><td style="padding: 8px; font-weight: bold;">Source</td><td style="padding: 8px;">{{.LeadSource}}</td></tr>{{end}}
    </table>
    {{if .LeadMessage}}
    <h3>Message</h3>
    <p style="background: #f5f5f5; padding: 12px; border-radius: 4px;">{{.LeadMessage}}</p>
    {{end}}
</div>
{{end}}
`
