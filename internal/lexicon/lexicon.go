// Package lexicon supplies the human vocabulary behind generated entities:
// person names, corporate emails, company names and domains, departments
// and job titles. Lookups are deterministic given the source they draw
// from.
package lexicon

import (
	"math/rand"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
)

var firstNames = []string{
	"James", "Michael", "Robert", "John", "David", "William", "Richard",
	"Joseph", "Thomas", "Christopher", "Charles", "Daniel", "Matthew",
	"Anthony", "Mark", "Steven", "Paul", "Andrew", "Joshua", "Kevin",
	"Brian", "George", "Timothy", "Ronald", "Edward", "Jason", "Jeffrey",
	"Ryan", "Jacob", "Nicholas", "Gary", "Eric", "Jonathan", "Stephen",
	"Larry", "Justin", "Scott", "Brandon", "Benjamin", "Samuel",
	"Mary", "Patricia", "Jennifer", "Linda", "Barbara", "Elizabeth",
	"Susan", "Jessica", "Sarah", "Karen", "Lisa", "Nancy", "Betty",
	"Margaret", "Sandra", "Ashley", "Kimberly", "Emily", "Donna",
	"Michelle", "Dorothy", "Carol", "Amanda", "Melissa", "Deborah",
	"Stephanie", "Rebecca", "Sharon", "Laura", "Cynthia", "Kathleen",
	"Amy", "Angela", "Shirley", "Anna", "Brenda", "Pamela", "Emma",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
	"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
	"Lee", "Perez", "Thompson", "White", "Harris", "Sanchez", "Clark",
	"Ramirez", "Lewis", "Robinson", "Walker", "Young", "Allen", "King",
	"Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores", "Green",
	"Adams", "Nelson", "Baker", "Hall", "Rivera", "Campbell", "Mitchell",
}

var companyPrefixes = []string{
	"Cloud", "Data", "Tech", "Smart", "AI", "Next", "Pro", "Prime",
	"Swift", "Apex", "Nova", "Sync", "Flow", "Core", "Hub", "Wave",
}

var companySuffixes = []string{
	"Labs", "Systems", "Works", "Logic", "Soft", "ware", "io", "ly",
	"Hub", "Base", "Stack", "Point", "Stream", "Grid", "Ops", "Forge",
}

var departments = []string{
	"Engineering", "Product", "Design", "Marketing", "Sales",
	"Customer Success", "Operations", "Finance", "HR", "Legal",
}

var jobTitles = map[string][]string{
	"Engineering": {
		"Software Engineer", "Senior Software Engineer", "Staff Engineer",
		"Engineering Manager", "DevOps Engineer", "QA Engineer",
		"Frontend Developer", "Backend Developer", "Full Stack Developer",
	},
	"Product": {
		"Product Manager", "Senior Product Manager", "Product Owner",
		"Associate Product Manager", "Director of Product",
	},
	"Design": {
		"UX Designer", "UI Designer", "Product Designer", "Design Lead",
		"UX Researcher",
	},
	"Marketing": {
		"Marketing Manager", "Content Marketer", "Growth Marketer",
		"Marketing Coordinator", "Brand Manager", "SEO Specialist",
	},
	"Sales": {
		"Account Executive", "Sales Development Rep", "Sales Manager",
		"Enterprise Sales Rep", "Sales Director",
	},
	"Customer Success": {
		"Customer Success Manager", "Support Engineer", "CSM Lead",
		"Technical Account Manager",
	},
	"Operations": {
		"Operations Manager", "Business Analyst", "Project Manager",
		"Scrum Master",
	},
	"Finance": {
		"Financial Analyst", "Accountant", "Controller", "FP&A Manager",
	},
	"HR": {
		"HR Manager", "Recruiter", "People Operations", "HR Coordinator",
	},
	"Legal": {
		"Legal Counsel", "Compliance Manager", "Paralegal",
	},
}

// Lexicon draws vocabulary from an explicit rand source. The embedded faker
// is seeded from the same source so whole runs replay from one seed.
type Lexicon struct {
	r     *rand.Rand
	faker *gofakeit.Faker
}

// New creates a Lexicon backed by r.
func New(r *rand.Rand) *Lexicon {
	return &Lexicon{
		r:     r,
		faker: gofakeit.New(r.Uint64()),
	}
}

// FullName returns a first and last name.
func (l *Lexicon) FullName() (string, string) {
	return choice(l.r, firstNames), choice(l.r, lastNames)
}

// Email builds a corporate address from a name and domain using one of four
// common patterns. Uniqueness is the caller's concern.
func (l *Lexicon) Email(firstName, lastName, domain string) string {
	first := strings.ToLower(firstName)
	last := strings.ToLower(lastName)

	patterns := []string{
		first + "." + last,
		first + last[:1],
		first[:1] + last,
		first + "_" + last,
	}
	return choice(l.r, patterns) + "@" + domain
}

// CompanyName builds a B2B SaaS sounding company name.
func (l *Lexicon) CompanyName() string {
	switch l.r.Intn(3) {
	case 0:
		return choice(l.r, companyPrefixes) + choice(l.r, companySuffixes)
	case 1:
		return choice(l.r, companyPrefixes) + " " + choice(l.r, []string{"AI", "Tech", "Cloud"})
	default:
		return l.faker.Company()
	}
}

// Domain derives a company domain from its name.
func (l *Lexicon) Domain(companyName string) string {
	var b strings.Builder
	for _, c := range strings.ToLower(companyName) {
		if c >= 'a' && c <= 'z' || c >= '0' && c <= '9' {
			b.WriteRune(c)
		}
	}
	return b.String() + ".com"
}

// Department returns a random department.
func (l *Lexicon) Department() string {
	return choice(l.r, departments)
}

// JobTitle returns a title within a department.
func (l *Lexicon) JobTitle(department string) string {
	titles, ok := jobTitles[department]
	if !ok {
		return "Team Member"
	}
	return choice(l.r, titles)
}

func choice(r *rand.Rand, values []string) string {
	return values[r.Intn(len(values))]
}
