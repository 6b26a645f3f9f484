package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/securevoice/securevoice-core/attachments"
	"github.com/securevoice/securevoice-core/auth"
	"github.com/securevoice/securevoice-core/complaints"
	"github.com/securevoice/securevoice-core/models"
	"github.com/securevoice/securevoice-core/query"
	"github.com/securevoice/securevoice-core/wizard"
)

// console is the interactive rendering surface. It only pulls snapshots from
// the core and forwards commands; all rules live in the engine packages.
type console struct {
	in      *bufio.Scanner
	out     io.Writer
	session *auth.Session
	wizard  *wizard.Engine
	svc     *complaints.Service
}

func newConsole(in io.Reader, out io.Writer, session *auth.Session, wiz *wizard.Engine, svc *complaints.Service) *console {
	return &console{
		in:      bufio.NewScanner(in),
		out:     out,
		session: session,
		wizard:  wiz,
		svc:     svc,
	}
}

func (c *console) run() {
	c.printf("SecureVoice console. Type 'help' for commands.\n")
	for {
		c.printf("> ")
		if !c.in.Scan() {
			return
		}
		line := strings.TrimSpace(c.in.Text())
		if line == "" {
			continue
		}
		cmd, rest, _ := strings.Cut(line, " ")

		switch cmd {
		case "help":
			c.help()
		case "login":
			c.login(rest)
		case "logout":
			c.session.Logout()
			c.printf("Logged out.\n")
		case "submit":
			c.submitWizard()
		case "quicksubmit":
			c.quickSubmit()
		case "list":
			c.list(rest, false)
		case "triage":
			c.list(rest, true)
		case "track":
			c.track(rest)
		case "status":
			c.status(rest)
		case "comment":
			c.comment(rest, false)
		case "note":
			c.comment(rest, true)
		case "delete":
			c.delete(rest)
		case "export":
			c.export()
		case "audit":
			c.audit()
		case "stats":
			c.stats()
		case "adduser":
			c.addUser(rest)
		case "quit", "exit":
			return
		default:
			c.printf("Unknown command %q. Type 'help'.\n", cmd)
		}
	}
}

func (c *console) help() {
	c.printf(`Commands:
  submit                      guided complaint submission
  quicksubmit                 one-shot complaint submission
  track <id>                  public tracker lookup
  list [search term]          public view, newest first
  login <user> <password>     staff login
  logout
  triage [search term]        staff view, urgent first
  status <id>                 cycle complaint status
  comment <id> <text>         add a public update
  note <id> <text>            add an internal note
  delete <id>                 delete a complaint
  export                      flat export snapshot
  stats                       analytics summary
  audit                       recent audit records
  adduser <user> <pass> <role> <name>
  quit
`)
}

func (c *console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

// prompt reads one line after showing a label
func (c *console) prompt(label string) string {
	c.printf("%s: ", label)
	if !c.in.Scan() {
		return ""
	}
	return strings.TrimSpace(c.in.Text())
}

func (c *console) login(rest string) {
	fields := strings.Fields(rest)
	if len(fields) != 2 {
		c.printf("usage: login <user> <password>\n")
		return
	}
	u, err := c.session.Login(fields[0], fields[1])
	if err != nil {
		c.printf("Login failed: %v\n", err)
		return
	}
	c.printf("Welcome, %s (%s)!\n", u.Name, u.Role.Label())
}

func (c *console) submitWizard() {
	if c.wizard.HasSavedDraft() {
		if strings.EqualFold(c.prompt("A saved draft was found. Resume? [y/n]"), "y") {
			c.wizard.Resume()
		} else {
			c.wizard.DiscardDraft()
			c.wizard.Start()
		}
	} else {
		c.wizard.Start()
	}

	for {
		step := c.wizard.Step()
		c.printf("-- Step %d of %d: %s --\n", step, wizard.LastStep, wizard.StepLabels[step-1])
		form := c.wizard.Form()

		switch step {
		case 1:
			form.Category = c.prompt("Category (harassment/discrimination/safety/ethics/other)")
			form.Priority = c.prompt("Priority (low/medium/high/urgent)")
		case 2:
			form.Subject = c.prompt("Subject")
			form.Description = c.prompt("Description")
			form.Location = c.prompt("Location (optional)")
			form.IncidentDate = c.prompt("Incident date (optional)")
		case 3:
			c.attachLoop()
			form.Email = c.prompt("Anonymous email for updates (optional)")
		case 4:
			c.review(form)
		}
		c.wizard.SetForm(form)

		action := c.prompt("[n]ext / [p]revious / [s]ave draft / submit / abort")
		switch action {
		case "p":
			c.wizard.Retreat()
		case "s":
			c.wizard.SaveDraft()
			c.printf("Draft saved.\n")
		case "submit":
			id, errs := c.wizard.Submit(context.Background())
			if len(errs) > 0 {
				c.showErrors(errs)
				continue
			}
			c.printf("Complaint submitted successfully! Your complaint ID is: %s\n", id)
			return
		case "abort":
			return
		default:
			if errs := c.wizard.Advance(); len(errs) > 0 {
				c.showErrors(errs)
			}
		}
	}
}

// quickSubmit collects every field in one pass and submits directly,
// bypassing the wizard
func (c *console) quickSubmit() {
	form := models.FormData{
		Category:    c.prompt("Category (harassment/discrimination/safety/ethics/other)"),
		Priority:    c.prompt("Priority (low/medium/high/urgent)"),
		Subject:     c.prompt("Subject"),
		Description: c.prompt("Description"),
		Location:    c.prompt("Location (optional)"),
		Email:       c.prompt("Anonymous email for updates (optional)"),
	}
	id, errs := c.svc.QuickSubmit(form)
	if len(errs) > 0 {
		c.showErrors(errs)
		return
	}
	c.printf("Complaint submitted successfully! Your complaint ID is: %s\n", id)
}

func (c *console) attachLoop() {
	for {
		path := c.prompt("File to attach (blank to continue)")
		if path == "" {
			return
		}
		f, err := os.Open(path)
		if err != nil {
			c.printf("cannot open %s: %v\n", path, err)
			continue
		}
		info, err := f.Stat()
		if err != nil {
			f.Close()
			c.printf("cannot stat %s: %v\n", path, err)
			continue
		}
		up := attachments.Upload{
			Name:        filepath.Base(path),
			ContentType: c.prompt("Content type (e.g. image/png)"),
			Size:        info.Size(),
			Content:     f,
		}
		accepted, rejected := c.wizard.AttachFiles(context.Background(), []attachments.Upload{up})
		f.Close()
		for _, e := range rejected {
			c.printf("rejected: %v\n", e)
		}
		if len(accepted) > 0 {
			c.printf("attached %s (%d bytes)\n", accepted[0].Name, accepted[0].Size)
		}
	}
}

func (c *console) review(form models.FormData) {
	c.printf("Category:    %s\nPriority:    %s\nSubject:     %s\nDescription: %s\n",
		form.Category, form.Priority, form.Subject, form.Description)
	if form.Location != "" {
		c.printf("Location:    %s\n", form.Location)
	}
	if form.Email != "" {
		c.printf("Email:       %s\n", form.Email)
	}
	for i, a := range c.wizard.Staged() {
		c.printf("File %d:      %s (%s, %d bytes)\n", i+1, a.Name, a.ContentType, a.Size)
	}
}

func (c *console) showErrors(errs models.ValidationErrors) {
	c.printf("Please fix the errors before continuing:\n")
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		c.printf("  %s: %s\n", f, errs[f])
	}
}

func (c *console) list(search string, staffView bool) {
	snapshot := query.Filter{Search: search}.Apply(c.svc.Store.All())
	if staffView {
		snapshot = query.SortForConsole(snapshot)
	} else {
		snapshot = query.SortForTracker(snapshot)
	}
	if len(snapshot) == 0 {
		c.printf("No complaints found.\n")
		return
	}
	for _, cm := range snapshot {
		c.printf("%s [%s/%s/%s] %s\n", cm.ID, cm.Category, cm.Priority, cm.Status, cm.Subject)
	}
}

func (c *console) track(id string) {
	cm, ok := c.svc.Track(strings.TrimSpace(id))
	if !ok {
		c.printf("Complaint ID not found. Please check and try again.\n")
		return
	}
	c.printf("%s [%s/%s/%s]\n%s\n%s\nLocation: %s\nSubmitted: %s\n",
		cm.ID, cm.Category, cm.Priority, cm.Status, cm.Subject, cm.Description,
		cm.Location, cm.CreatedAt.Format("January 2, 2006 03:04 PM"))
	for _, comment := range cm.Comments {
		c.printf("Update by %s: %s\n", comment.Author, comment.Text)
	}
}

func (c *console) status(id string) {
	next, err := c.svc.UpdateStatus(strings.TrimSpace(id))
	if err != nil {
		c.report(err)
		return
	}
	c.printf("Status updated to %s\n", next)
}

func (c *console) comment(rest string, internal bool) {
	id, text, ok := strings.Cut(rest, " ")
	if !ok || strings.TrimSpace(text) == "" {
		c.printf("usage: comment <id> <text>\n")
		return
	}
	if _, err := c.svc.AddComment(id, strings.TrimSpace(text), internal); err != nil {
		c.report(err)
		return
	}
	c.printf("Comment added successfully\n")
}

func (c *console) delete(id string) {
	if !strings.EqualFold(c.prompt("Delete is permanent. Confirm? [y/n]"), "y") {
		return
	}
	if err := c.svc.Delete(strings.TrimSpace(id)); err != nil {
		c.report(err)
		return
	}
	c.printf("Complaint deleted successfully\n")
}

func (c *console) export() {
	rows, err := c.svc.ExportRows()
	if err != nil {
		c.report(err)
		return
	}
	for _, r := range rows {
		c.printf("%s,%s,%s,%s,%s,%s,%s,%d,%d\n",
			r.ID, r.Category, r.Subject, r.Location, r.Priority, r.Status, r.Date, r.Files, r.Comments)
	}
	c.printf("Exported %d complaints\n", len(rows))
}

func (c *console) audit() {
	records, err := c.session.RecentAuditRecords()
	if err != nil {
		c.report(err)
		return
	}
	for _, r := range records {
		c.printf("%s %s %s (%s)\n", r.Timestamp.Format("2006-01-02 15:04"), r.Action, r.Details, r.Username)
	}
}

func (c *console) stats() {
	s, err := c.svc.Stats()
	if err != nil {
		c.report(err)
		return
	}
	c.printf("Total: %d\n", s.Total)
	for _, st := range models.Statuses {
		c.printf("  %s: %d\n", st, s.ByStatus[st])
	}
	for _, cat := range models.Categories {
		if n := s.ByCategory[cat]; n > 0 {
			c.printf("  %s: %d\n", cat, n)
		}
	}
	if s.Resolution.TotalResolved > 0 {
		c.printf("Resolved: %d (avg %d days open)\n", s.Resolution.TotalResolved, s.Resolution.AverageDays)
	}
}

func (c *console) addUser(rest string) {
	fields := strings.Fields(rest)
	if len(fields) < 4 {
		c.printf("usage: adduser <user> <pass> <role> <name>\n")
		return
	}
	name := strings.Join(fields[3:], " ")
	u, err := c.session.CreateUser(fields[0], fields[1], models.Role(fields[2]), name)
	if err != nil {
		c.report(err)
		return
	}
	c.printf("User created successfully: %s (%s)\n", u.Username, u.Role)
}

// report renders a core error, prompting for login when the denial came from
// a missing session
func (c *console) report(err error) {
	var access *models.AccessError
	if errors.As(err, &access) {
		if access.NeedsLogin() {
			c.printf("Please log in first: login <user> <password>\n")
			return
		}
		c.printf("You do not have permission to perform this action\n")
		return
	}
	if errors.Is(err, models.ErrNotFound) {
		c.printf("Complaint ID not found. Please check and try again.\n")
		return
	}
	c.printf("Error: %v\n", err)
}
