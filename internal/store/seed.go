package store

import (
	"time"

	"github.com/campushire/placement-api/internal/models"
)

// Default dataset used when a collection has never been persisted. Fixed ids
// keep the seed relationships stable across reloads.

func date(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

func seedUsers() []models.User {
	return []models.User{
		{ID: "admin1", Name: "Admin User", Email: "admin@placement.edu", Role: models.RoleAdmin, Active: true, CreatedAt: date(2025, 1, 1, 0, 0)},
		{ID: "student1", Name: "Alice Johnson", Email: "alice@student.edu", Role: models.RoleStudent, Department: "Computer Science", Active: true, CreatedAt: date(2025, 1, 15, 0, 0)},
		{ID: "student2", Name: "Bob Smith", Email: "bob@student.edu", Role: models.RoleStudent, Department: "Electrical Engineering", Active: true, CreatedAt: date(2025, 1, 16, 0, 0)},
		{ID: "student3", Name: "Carol White", Email: "carol@student.edu", Role: models.RoleStudent, Department: "Computer Science", Active: true, CreatedAt: date(2025, 1, 17, 0, 0)},
		{ID: "recruiter1", Name: "David Brown", Email: "david@techcorp.com", Role: models.RoleRecruiter, Active: true, CreatedAt: date(2025, 1, 10, 0, 0)},
		{ID: "recruiter2", Name: "Emma Davis", Email: "emma@innovate.com", Role: models.RoleRecruiter, Active: true, CreatedAt: date(2025, 1, 11, 0, 0)},
		{ID: "faculty1", Name: "Prof. Frank Wilson", Email: "frank@placement.edu", Role: models.RoleFaculty, Department: "Computer Science", Active: true, CreatedAt: date(2025, 1, 5, 0, 0)},
	}
}

func seedProfiles() []models.StudentProfile {
	return []models.StudentProfile{
		{
			UserID:         "student1",
			Program:        "B.Tech Computer Science",
			GraduationYear: 2025,
			CGPA:           8.5,
			Skills:         []string{"React", "Node.js", "Python", "MongoDB", "Machine Learning"},
			Projects: []models.Project{
				{Title: "E-commerce Platform", Description: "Full-stack e-commerce application using the MERN stack", Link: "https://github.com/alice/ecommerce"},
				{Title: "ML-based Recommendation System", Description: "Content recommendation engine using collaborative filtering"},
			},
			ResumeURL:      "https://example.com/resume/alice.pdf",
			Verified:       true,
			VerifiedFields: models.VerifiedFields{Transcript: true, Certificate: true},
		},
		{
			UserID:         "student2",
			Program:        "B.Tech Electrical Engineering",
			GraduationYear: 2025,
			CGPA:           7.8,
			Skills:         []string{"C++", "Python", "MATLAB", "Embedded Systems", "IoT"},
			Projects: []models.Project{
				{Title: "Smart Home Automation", Description: "IoT-based home automation system with voice control"},
			},
			ResumeURL: "https://example.com/resume/bob.pdf",
		},
		{
			UserID:         "student3",
			Program:        "B.Tech Computer Science",
			GraduationYear: 2026,
			CGPA:           9.2,
			Skills:         []string{"Java", "Spring Boot", "React", "Docker", "Kubernetes", "AWS"},
			Projects: []models.Project{
				{Title: "Microservices Architecture", Description: "Scalable microservices platform with container orchestration", Link: "https://github.com/carol/microservices"},
			},
			ResumeURL:      "https://example.com/resume/carol.pdf",
			Verified:       true,
			VerifiedFields: models.VerifiedFields{Transcript: true, Certificate: true},
		},
	}
}

func intPtr(v int64) *int64 { return &v }

func seedJobs() []models.Job {
	return []models.Job{
		{
			ID: "job1", RecruiterID: "recruiter1", RecruiterName: "David Brown", CompanyName: "TechCorp Solutions",
			Title:       "Software Engineer Intern",
			Description: "Join our team to work on cutting-edge web applications alongside senior engineers.",
			Skills:      []string{"React", "Node.js", "MongoDB", "JavaScript"},
			Eligibility: models.Eligibility{MinCGPA: 7.5, Batch: []int{2025, 2026}, RequiresVerification: true},
			Location:    "Bangalore", Stipend: intPtr(50000),
			Status: models.JobOpen, Deadline: date(2025, 11, 30, 23, 59), CreatedAt: date(2025, 10, 15, 10, 0),
			ScreeningQuestions: []string{
				"Why do you want to work at TechCorp?",
				"Describe a challenging project you worked on.",
			},
		},
		{
			ID: "job2", RecruiterID: "recruiter2", RecruiterName: "Emma Davis", CompanyName: "Innovate Labs",
			Title:       "Machine Learning Intern",
			Description: "Work on ML projects involving NLP and computer vision with industry experts.",
			Skills:      []string{"Python", "Machine Learning", "TensorFlow", "PyTorch"},
			Eligibility: models.Eligibility{MinCGPA: 8.0, Batch: []int{2025}, RequiresVerification: true},
			Location:    "Hyderabad", Remote: true, Stipend: intPtr(60000),
			Status: models.JobOpen, Deadline: date(2025, 12, 15, 23, 59), CreatedAt: date(2025, 10, 20, 14, 0),
		},
		{
			ID: "job3", RecruiterID: "recruiter1", RecruiterName: "David Brown", CompanyName: "TechCorp Solutions",
			Title:       "Full Stack Developer",
			Description: "Full-time position for graduating students working on enterprise applications.",
			Skills:      []string{"React", "Node.js", "PostgreSQL", "AWS", "Docker"},
			Eligibility: models.Eligibility{MinCGPA: 7.0, Batch: []int{2025}},
			Location:    "Bangalore", Salary: intPtr(1200000),
			Status: models.JobOpen, Deadline: date(2025, 11, 20, 23, 59), CreatedAt: date(2025, 10, 10, 9, 0),
		},
		{
			ID: "job4", RecruiterID: "recruiter2", RecruiterName: "Emma Davis", CompanyName: "Innovate Labs",
			Title:       "Backend Developer Intern",
			Description: "Build scalable APIs and microservices with cloud-native practices.",
			Skills:      []string{"Java", "Spring Boot", "Kubernetes", "MongoDB"},
			Eligibility: models.Eligibility{MinCGPA: 7.5, Batch: []int{2025, 2026}},
			Location:    "Mumbai", Remote: true, Stipend: intPtr(45000),
			Status: models.JobOpen, Deadline: date(2025, 12, 1, 23, 59), CreatedAt: date(2025, 10, 25, 11, 0),
		},
	}
}

func seedApplications() []models.Application {
	aptitude1, tech1, comm1 := 85, 90, 88
	aptitude2, tech2 := 88, 85
	aptitude3, tech3, comm3 := 95, 92, 90
	return []models.Application{
		{
			ID: "app1", JobID: "job1", StudentID: "student1", StudentName: "Alice Johnson", StudentEmail: "alice@student.edu",
			CoverLetter: "I am very interested in this position because I have extensive experience with the MERN stack.",
			ResumeURL:   "https://example.com/resume/alice.pdf",
			Stage:       models.StageShortlisted,
			Scores:      models.Scores{Aptitude: &aptitude1, Tech: &tech1, Communication: &comm1},
			ReviewerNotes: []models.ReviewNote{
				{Note: "Strong technical background. Good project portfolio.", Reviewer: "David Brown", Timestamp: date(2025, 10, 20, 15, 30)},
			},
			CreatedAt: date(2025, 10, 16, 10, 0), UpdatedAt: date(2025, 10, 20, 15, 30),
		},
		{
			ID: "app2", JobID: "job2", StudentID: "student1", StudentName: "Alice Johnson", StudentEmail: "alice@student.edu",
			CoverLetter: "My passion for machine learning and previous projects make me an ideal candidate.",
			ResumeURL:   "https://example.com/resume/alice.pdf",
			Stage:       models.StageInterview,
			Scores:      models.Scores{Aptitude: &aptitude2, Tech: &tech2},
			ReviewerNotes: []models.ReviewNote{
				{Note: "Impressive ML project. Schedule for technical interview.", Reviewer: "Emma Davis", Timestamp: date(2025, 10, 22, 10, 0)},
			},
			CreatedAt: date(2025, 10, 21, 9, 0), UpdatedAt: date(2025, 10, 22, 10, 0),
		},
		{
			ID: "app3", JobID: "job1", StudentID: "student3", StudentName: "Carol White", StudentEmail: "carol@student.edu",
			CoverLetter: "With my strong background in full-stack development and cloud technologies...",
			ResumeURL:   "https://example.com/resume/carol.pdf",
			Stage:       models.StageOffered,
			Scores:      models.Scores{Aptitude: &aptitude3, Tech: &tech3, Communication: &comm3},
			ReviewerNotes: []models.ReviewNote{
				{Note: "Exceptional candidate. Top of the cohort.", Reviewer: "David Brown", Timestamp: date(2025, 10, 25, 14, 0)},
				{Note: "Offer extended. Awaiting response.", Reviewer: "David Brown", Timestamp: date(2025, 10, 28, 10, 0)},
			},
			CreatedAt: date(2025, 10, 17, 11, 0), UpdatedAt: date(2025, 10, 28, 10, 0),
		},
		{
			ID: "app4", JobID: "job4", StudentID: "student3", StudentName: "Carol White", StudentEmail: "carol@student.edu",
			CoverLetter: "I am excited about the opportunity to work with microservices and Kubernetes.",
			ResumeURL:   "https://example.com/resume/carol.pdf",
			Stage:       models.StageApplied,
			CreatedAt:   date(2025, 10, 26, 14, 0), UpdatedAt: date(2025, 10, 26, 14, 0),
		},
	}
}

func seedVerifications() []models.Verification {
	r1 := date(2025, 10, 6, 14, 0)
	r2 := date(2025, 10, 6, 14, 5)
	r4 := date(2025, 10, 2, 11, 0)
	return []models.Verification{
		{
			ID: "ver1", StudentID: "student1", StudentName: "Alice Johnson", DocumentType: models.DocTranscript,
			FileURL: "https://example.com/docs/alice-transcript.pdf", FileName: "transcript_alice.pdf",
			Status: models.VerificationApproved, Remarks: "All documents verified. CGPA matches records.",
			SubmittedAt: date(2025, 10, 5, 10, 0), ReviewedAt: &r1, ReviewedBy: "Prof. Frank Wilson",
		},
		{
			ID: "ver2", StudentID: "student1", StudentName: "Alice Johnson", DocumentType: models.DocCertificate,
			FileURL: "https://example.com/docs/alice-cert.pdf", FileName: "degree_certificate.pdf",
			Status: models.VerificationApproved, Remarks: "Certificate verified.",
			SubmittedAt: date(2025, 10, 5, 10, 5), ReviewedAt: &r2, ReviewedBy: "Prof. Frank Wilson",
		},
		{
			ID: "ver3", StudentID: "student2", StudentName: "Bob Smith", DocumentType: models.DocTranscript,
			FileURL: "https://example.com/docs/bob-transcript.pdf", FileName: "transcript_bob.pdf",
			Status:      models.VerificationPending,
			SubmittedAt: date(2025, 10, 28, 9, 0),
		},
		{
			ID: "ver4", StudentID: "student3", StudentName: "Carol White", DocumentType: models.DocTranscript,
			FileURL: "https://example.com/docs/carol-transcript.pdf", FileName: "transcript_carol.pdf",
			Status: models.VerificationApproved, Remarks: "Excellent academic record.",
			SubmittedAt: date(2025, 10, 1, 10, 0), ReviewedAt: &r4, ReviewedBy: "Prof. Frank Wilson",
		},
	}
}

func seedDepartments() []models.Department {
	return []models.Department{
		{ID: "dept1", Name: "Computer Science", Code: "CS"},
		{ID: "dept2", Name: "Electrical Engineering", Code: "EE"},
		{ID: "dept3", Name: "Mechanical Engineering", Code: "ME"},
		{ID: "dept4", Name: "Information Technology", Code: "IT"},
		{ID: "dept5", Name: "Electronics and Communication", Code: "EC"},
	}
}

func seedSkills() []models.Skill {
	return []models.Skill{
		{ID: "skill1", Name: "React", Category: "Frontend"},
		{ID: "skill2", Name: "Node.js", Category: "Backend"},
		{ID: "skill3", Name: "Python", Category: "Programming"},
		{ID: "skill4", Name: "Java", Category: "Programming"},
		{ID: "skill5", Name: "MongoDB", Category: "Database"},
		{ID: "skill6", Name: "PostgreSQL", Category: "Database"},
		{ID: "skill7", Name: "Machine Learning", Category: "AI/ML"},
		{ID: "skill8", Name: "TensorFlow", Category: "AI/ML"},
		{ID: "skill9", Name: "AWS", Category: "Cloud"},
		{ID: "skill10", Name: "Docker", Category: "DevOps"},
		{ID: "skill11", Name: "Kubernetes", Category: "DevOps"},
		{ID: "skill12", Name: "Spring Boot", Category: "Backend"},
	}
}
