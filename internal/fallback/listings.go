package fallback

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/fadilmartias/cv-optimizer/internal/model"
)

type listingTemplate struct {
	title        string
	company      string
	location     string
	salary       string
	description  string
	requirements []string
	portal       string
	url          string
	postedDate   string
}

var listingTemplates = []listingTemplate{
	{"%s", "Tech Corp", "Remote", "$60,000 - $80,000", "Looking for experienced %s...",
		[]string{"Python", "Django", "REST API"}, "Indeed",
		"https://www.indeed.com/jobs?q={title}&l={location}", "2 days ago"},
	{"Senior %s", "Innovation Labs", "New York", "$80,000 - $100,000", "Senior %s position...",
		[]string{"React", "Node.js", "AWS"}, "LinkedIn",
		"https://www.linkedin.com/jobs/search/?keywords={title}&location={location}", "1 day ago"},
	{"%s Specialist", "Global Solutions", "Mumbai", "₹8,00,000 - ₹12,00,000", "Exciting %s opportunity...",
		[]string{"Java", "Spring Boot", "Microservices"}, "Naukri",
		"https://www.naukri.com/jobs-in-{location_path}-{title_path}", "3 days ago"},
	{"%s - Entry Level", "StartupXYZ", "Bangalore", "₹6,00,000 - ₹9,00,000", "Great opportunity for %s...",
		[]string{"JavaScript", "React", "Node.js"}, "Glassdoor",
		"https://www.glassdoor.com/Job/jobs.htm?sc.keyword={title}&locT=C&locId=1", "1 week ago"},
	{"%s Developer", "Google", "Remote", "$80,000 - $120,000", "We are looking for a skilled %s to join our team...",
		[]string{"Go", "Distributed Systems", "Kubernetes"}, "Google Careers",
		"https://careers.google.com/jobs/results/?q={title}", "2024-01-15"},
	{"Senior %s", "Microsoft", "Seattle", "$100,000 - $150,000", "Join Microsoft as a Senior %s and work on cutting-edge projects...",
		[]string{"C#", "Azure", "System Design"}, "Microsoft Careers",
		"https://careers.microsoft.com/us/en/search-results?keywords={title}", "2024-01-14"},
	{"%s Engineer", "Amazon", "Remote", "$90,000 - $130,000", "Amazon is hiring %s Engineers for various teams...",
		[]string{"Java", "AWS", "Microservices"}, "Amazon Jobs",
		"https://amazon.jobs/en/search?base_query={title}", "2024-01-13"},
	{"%s Specialist", "Meta", "Menlo Park", "$110,000 - $160,000", "Meta is seeking a %s Specialist to drive innovation...",
		[]string{"Python", "React", "GraphQL"}, "Meta Careers",
		"https://www.metacareers.com/jobs/?q={title}", "2024-01-12"},
}

// ListingBatchSize is the most listings PlaceholderListings yields per title.
func ListingBatchSize() int {
	return len(listingTemplates)
}

// PlaceholderListings builds up to n listings for jobTitle from the fixed
// templates. An empty location falls back to each template's city.
func PlaceholderListings(jobTitle, location string, n int) []model.JobListing {
	if n <= 0 {
		return []model.JobListing{}
	}
	if n > len(listingTemplates) {
		n = len(listingTemplates)
	}

	urlLocation := location
	if urlLocation == "" {
		urlLocation = "remote"
	}
	expand := strings.NewReplacer(
		"{title_path}", url.PathEscape(jobTitle),
		"{location_path}", url.PathEscape(urlLocation),
		"{title}", url.QueryEscape(jobTitle),
		"{location}", url.QueryEscape(urlLocation),
	)

	listings := make([]model.JobListing, 0, n)
	for _, tpl := range listingTemplates[:n] {
		loc := location
		if loc == "" {
			loc = tpl.location
		}
		listings = append(listings, model.JobListing{
			Title:        fmt.Sprintf(tpl.title, jobTitle),
			Company:      tpl.company,
			Location:     loc,
			SalaryRange:  tpl.salary,
			Description:  fmt.Sprintf(tpl.description, jobTitle),
			Requirements: append([]string(nil), tpl.requirements...),
			Portal:       tpl.portal,
			URL:          expand.Replace(tpl.url),
			PostedDate:   tpl.postedDate,
			JobType:      "Full-time",
		})
	}
	return listings
}
