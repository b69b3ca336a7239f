package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"owlplanner/internal/catalog"
	"owlplanner/internal/course"
	"owlplanner/internal/logger"
	"owlplanner/internal/planner"
)

var (
	planCourses    string
	planMaxResults int
	planTimeLimit  time.Duration
	planShow       int
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Plan schedules for a set of courses and print them ranked",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVar(&planCourses, "courses", "", `comma-separated course names, e.g. "COMP 140, MATH 212"`)
	planCmd.Flags().IntVar(&planMaxResults, "max", 0, "stop after this many schedules (0 = unbounded)")
	planCmd.Flags().DurationVar(&planTimeLimit, "time-limit", 0, "stop searching after this long (0 = unbounded)")
	planCmd.Flags().IntVar(&planShow, "show", 50, "number of ranked schedules to print")
	_ = planCmd.MarkFlagRequired("courses")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	setupLogging(cfg)

	store := catalog.NewStore(logger.New("catalog"))
	if _, err := store.LoadFile(cfg.Catalog.CSVPath); err != nil {
		return err
	}

	names := lo.Map(strings.Split(planCourses, ","), func(name string, _ int) string {
		return strings.ToUpper(strings.TrimSpace(name))
	})

	found, missing := store.Select(names)
	if len(missing) > 0 {
		return fmt.Errorf("courses not found: %v", strings.Join(missing, ", "))
	}

	request := lo.Map(found, func(candidates catalog.CourseSections, _ int) planner.CourseRequest {
		return planner.CourseRequest{Course: candidates.Course, Sections: candidates.Sections}
	})

	limits := planner.Limits{MaxResults: planMaxResults}
	if planTimeLimit > 0 {
		limits.Deadline = time.Now().Add(planTimeLimit)
	}

	schedules := planner.Generate(request, limits)
	ranked := planner.Rank(schedules, planner.DefaultPreferences(), planner.DefaultWeights())

	fmt.Printf("Found %v valid schedules\n\n", len(ranked))
	for i, scored := range ranked {
		if i >= planShow {
			break
		}
		fmt.Printf("Schedule %v (score %v):\n", i+1, scored.Score)
		for _, section := range scored.Schedule {
			times := lo.Map(section.Meetings, func(meeting course.MeetingTime, _ int) string {
				return meeting.String()
			})
			fmt.Printf("  %v (%v) - %v - %v\n", section.Course, section.CRN, section.Instructor, strings.Join(times, ", "))
		}
		if len(scored.Satisfied) > 0 {
			fmt.Printf("  Satisfies: %v\n", strings.Join(scored.Satisfied, ", "))
		}
		fmt.Println()
	}
	return nil
}
