// Package cmd is the thin console front end. It only renders rows and
// totals the core services hand it; all booking and account rules live in
// internal/usecase and below.
package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"movie-booking/internal/wire"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

// Run starts a minimal interactive loop over the wired services.
func Run(app *wire.App, logger *zap.Logger) {
	fmt.Println("movie-booking console. Commands: movies, remove <row>, summary, users, recent, user <identifier>, quit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}

		line := strings.TrimSpace(scanner.Text())
		cmd, arg, _ := strings.Cut(line, " ")

		switch cmd {
		case "movies":
			for i, m := range app.Service.Catalog.List() {
				fmt.Printf("%3d  %s (%s, %s) dir. %s, %s min, rated %s\n",
					i+1, m.Name, m.Genre, m.Language, m.Director, m.Duration, m.Rating)
			}

		case "remove":
			row := utils.ParseInt(arg, 0)
			if row == 0 {
				fmt.Println("usage: remove <row>")
				continue
			}
			if err := app.Service.Catalog.Remove(row - 1); err != nil {
				fmt.Println("remove failed:", err)
			}

		case "summary":
			s := app.Service.Dashboard.AdminSummary()
			fmt.Printf("movies=%d users=%d active=%d bookings=%d revenue=%d\n",
				s.TotalMovies, s.TotalUsers, s.ActiveUsers, s.TotalBookings, s.TotalRevenue)

		case "users":
			for _, u := range app.Service.Dashboard.UserRows() {
				fmt.Printf("%-20s %-30s %-8s %s  bookings=%d\n",
					u.Username, u.Email, u.Status, u.RegisteredAt.Format("2006-01-02"), u.Bookings)
			}

		case "recent":
			for _, b := range app.Service.Dashboard.RecentBookings() {
				fmt.Printf("%-20s %-30s %s\n", b.Owner, b.Movie, b.Date)
			}

		case "user":
			if arg == "" {
				fmt.Println("usage: user <identifier>")
				continue
			}
			s := app.Service.Dashboard.UserSummary(arg)
			fmt.Printf("bookings=%d spent=%d recent=%s\n", s.TotalBookings, s.TotalSpent, s.RecentMovie)

		case "quit", "exit":
			return

		case "":

		default:
			fmt.Println("unknown command:", cmd)
			logger.Debug("Unknown console command", zap.String("command", cmd))
		}
	}
}
