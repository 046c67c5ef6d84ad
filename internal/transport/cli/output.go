package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/heartmarshall/careportal-backend/internal/domain"
)

func (st *state) printJSON(v any) error {
	enc := json.NewEncoder(st.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (st *state) printf(format string, args ...any) {
	fmt.Fprintf(st.out, format, args...)
}

func (st *state) table(header string, rows [][]string) error {
	w := tabwriter.NewWriter(st.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, header)
	for _, r := range rows {
		fmt.Fprintln(w, strings.Join(r, "\t"))
	}
	return w.Flush()
}

func (st *state) printUsers(users []domain.User) error {
	if st.json {
		return st.printJSON(users)
	}
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{u.ID, u.Role.String(), u.Username, u.FullName, u.AccessCode})
	}
	return st.table("ID\tROLE\tUSERNAME\tNAME\tCODE", rows)
}

func (st *state) printChart(u *domain.User) error {
	if st.json {
		return st.printJSON(u)
	}
	chart, _ := u.Patient()
	st.printf("%s (%s)\n", u.FullName, u.ID)
	st.printf("MRN: %s · DOB: %s · Blood Type: %s\n", orDash(chart.MRN), orDash(chart.DOB), orDash(chart.Blood))
	if chart.Allergies != "" {
		st.printf("Allergy: %s\n", chart.Allergies)
	}
	for _, m := range chart.Meds {
		st.printf("  - %s\n", m.Line())
	}
	return nil
}

func (st *state) printEntries(entries []domain.Entry) error {
	if st.json {
		return st.printJSON(entries)
	}
	for _, e := range entries {
		st.printf("[%s] %s: %s\n", e.CreatedAt.Local().Format("2006-01-02 15:04"), e.AuthorRole, e.Text)
	}
	return nil
}

func (st *state) printTickets(tickets []domain.Ticket) error {
	if st.json {
		return st.printJSON(tickets)
	}
	rows := make([][]string, 0, len(tickets))
	for _, t := range tickets {
		status := "open"
		if t.Done {
			status = "done"
		}
		rows = append(rows, []string{t.ID, status, t.FromCaregiverName, t.PatientName, t.Text})
	}
	return st.table("ID\tSTATUS\tFROM\tPATIENT\tTEXT", rows)
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
