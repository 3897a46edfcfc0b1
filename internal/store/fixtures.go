package store

import (
	"time"

	"github.com/ljylun/InterviewManagementMaster/internal/types"
)

// Fixture dataset: three openings, four candidates, four applications. This
// is the seed the in-memory backend starts from and what the seed subcommand
// loads into Postgres.

// SeedData returns the fixture dataset as a snapshot, for loading into a
// persistent backend.
func SeedData() Snapshot {
	return Snapshot{
		Jobs:         seedJobs(),
		Candidates:   seedCandidates(),
		Applications: seedApplications(),
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedJobs() []types.Job {
	return []types.Job{
		{
			ID: "j1", Title: "Senior Frontend Engineer", Department: "Engineering",
			Location: "Remote", Type: "Full-time", Lifecycle: types.JobHiring,
			Recruiter: "Sarah Connor", HiringManager: "John Doe",
			TargetCount: 2, HiredCount: 0,
		},
		{
			ID: "j2", Title: "Product Manager", Department: "Product",
			Location: "New York", Type: "Full-time", Lifecycle: types.JobHiring,
			Recruiter: "Sarah Connor", HiringManager: "Jane Smith",
			TargetCount: 1, HiredCount: 0,
		},
		{
			ID: "j3", Title: "UX Designer", Department: "Design",
			Location: "San Francisco", Type: "Contract", Lifecycle: types.JobPaused,
			Recruiter: "Mike Ross", HiringManager: "Rachel Zane",
			TargetCount: 1, HiredCount: 1,
		},
	}
}

func seedCandidates() []types.Candidate {
	return []types.Candidate{
		{
			ID: "c1", Name: "Alice Johnson", Role: "Senior Frontend Engineer",
			Email: "alice@example.com", Phone: "+1 555-0101", Experience: 6,
			Education: "BS CS, MIT", Tags: []string{"React", "TypeScript", "Redux"},
			AvatarURL: "https://picsum.photos/200/200?random=1",
			ResumeURL: "https://www.w3.org/WAI/ER/tests/xhtml/testfiles/resources/pdf/dummy.pdf",
			WorkExperience: []types.WorkExperience{
				{
					Company: "TechFlow Solutions", Role: "Senior Frontend Engineer",
					StartDate: "2021-03", EndDate: "Present",
					Description: "Leading a team of 4 devs, migrated monolith to micro-frontends.",
				},
				{
					Company: "WebWorks Inc.", Role: "Frontend Developer",
					StartDate: "2018-06", EndDate: "2021-02",
					Description: "Developed e-commerce platform using React and Node.js.",
				},
			},
		},
		{
			ID: "c2", Name: "Bob Smith", Role: "Product Manager",
			Email: "bob@example.com", Phone: "+1 555-0102", Experience: 4,
			Education: "MBA, Harvard", Tags: []string{"Agile", "Jira", "Strategy"},
			AvatarURL: "https://picsum.photos/200/200?random=2",
			WorkExperience: []types.WorkExperience{
				{
					Company: "Innovate Corp", Role: "Product Owner",
					StartDate: "2019-01", EndDate: "Present",
					Description: "Managed product roadmap for SaaS billing system.",
				},
			},
		},
		{
			ID: "c3", Name: "Charlie Davis", Role: "Full Stack Dev",
			Email: "charlie@example.com", Phone: "+1 555-0103", Experience: 8,
			Education: "MS CS, Stanford", Tags: []string{"Vue", "AWS", "Leadership"},
			AvatarURL: "https://picsum.photos/200/200?random=3",
		},
		{
			ID: "c4", Name: "Diana Prince", Role: "UX Designer",
			Email: "diana@example.com", Phone: "+1 555-0104", Experience: 5,
			Education: "BA Design, RISD", Tags: []string{"Figma", "User Research"},
			AvatarURL: "https://picsum.photos/200/200?random=4",
		},
	}
}

func seedApplications() []types.Application {
	score := func(v float64) *float64 { return &v }
	return []types.Application{
		{
			ID: "a1", JobID: "j1", CandidateID: "c1",
			Status: types.StatusInterviewing, InterviewRound: 2,
			AppliedAt: date(2023, time.October, 15), UpdatedAt: date(2023, time.October, 20),
		},
		{
			ID: "a2", JobID: "j2", CandidateID: "c2",
			Status: types.StatusNew, InterviewRound: 0,
			AppliedAt: date(2023, time.October, 20), UpdatedAt: date(2023, time.October, 20),
		},
		{
			ID: "a3", JobID: "j1", CandidateID: "c3",
			Status: types.StatusOffer, InterviewRound: 3, Score: score(4.8),
			AppliedAt: date(2023, time.October, 10), UpdatedAt: date(2023, time.October, 25),
		},
		{
			ID: "a4", JobID: "j3", CandidateID: "c4",
			Status: types.StatusScreened, InterviewRound: 0,
			AppliedAt: date(2023, time.October, 18), UpdatedAt: date(2023, time.October, 19),
		},
	}
}
