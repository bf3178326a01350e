package cli

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"

	"cpu-scheduler/api"
	"cpu-scheduler/config"
	"cpu-scheduler/internal/display"
	"cpu-scheduler/internal/schedulers"
	"cpu-scheduler/internal/util"
)

var titles = map[string]string{
	schedulers.AlgorithmFCFS:       "First-come, first-serve",
	schedulers.AlgorithmSJF:        "Shortest-job-first",
	schedulers.AlgorithmRoundRobin: "Round-robin",
	schedulers.AlgorithmPriority:   "Priority",
}

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "cpu-scheduler",
		Short:         "Simulate classical CPU scheduling policies",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newRunCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the scheduling engine over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.GetSchedulerConfig()
			handler := api.NewSchedulerHandlerImpl(cfg)

			app := fiber.New()
			api.RegisterRoutes(app, handler)

			return app.Listen(fmt.Sprintf(":%d", cfg.Port))
		},
	}
}

func newRunCmd() *cobra.Command {
	var (
		algorithm string
		quantum   int
		withAging bool
	)
	cmd := &cobra.Command{
		Use:   "run <workload.csv>",
		Short: "Run a policy over a CSV workload and print the schedule",
		Long: "Run a scheduling policy over a workload file of " +
			"id,burst,arrival[,priority] rows and print the Gantt chart, " +
			"execution details and schedule table.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			processes, err := LoadWorkload(args[0])
			if err != nil {
				return err
			}

			names := []string{algorithm}
			if algorithm == "all" {
				names = schedulers.Algorithms
			}
			for _, name := range names {
				schedule, err := schedulers.RunAlgorithm(name, processes, quantum, withAging)
				if err != nil {
					return err
				}
				summary, err := util.Summarize(schedule.Processes)
				if err != nil {
					return err
				}
				title := titles[name]
				if name == schedulers.AlgorithmRoundRobin {
					title = fmt.Sprintf("%s (quantum = %d)", title, quantum)
				}
				display.Render(cmd.OutOrStdout(), title, schedule, summary)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "all", "policy to run: fcfs, sjf, rr, priority or all")
	cmd.Flags().IntVarP(&quantum, "quantum", "q", config.GetSchedulerConfig().RoundRobinTimeQuantum, "time quantum for round-robin")
	cmd.Flags().BoolVar(&withAging, "aging", config.GetSchedulerConfig().PriorityAging, "age priorities of waiting processes")
	return cmd
}
