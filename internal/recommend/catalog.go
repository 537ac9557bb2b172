package recommend

import (
	"github.com/Dhanushcr18/Edu-wealth/internal/models"
	"github.com/shopspring/decimal"
)

func price(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func rating(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

// CuratedCatalog returns the built-in course list used for catalog seeding
// and by the curated search provider. Each call returns fresh copies so
// callers may mutate results safely.
func CuratedCatalog() []models.Course {
	return []models.Course{
		{
			Title:        "The Complete 2024 Web Development Bootcamp",
			ProviderName: "Udemy",
			ProviderSlug: "udemy",
			URL:          "https://www.udemy.com/course/the-complete-web-development-bootcamp/",
			Price:        price(499),
			Currency:     "INR",
			Rating:       rating(4.7),
			Duration:     "61 hours",
			Categories:   []string{"web-development", "programming", "full-stack"},
			ThumbnailURL: "https://img-c.udemycdn.com/course/240x135/1565838_e54e_18.jpg",
			Description:  "Become a Full-Stack Web Developer with just ONE course.",
		},
		{
			Title:        "Modern JavaScript From The Beginning",
			ProviderName: "Udemy",
			ProviderSlug: "udemy",
			URL:          "https://www.udemy.com/course/modern-javascript-from-the-beginning/",
			Price:        price(449),
			Currency:     "INR",
			Rating:       rating(4.7),
			Duration:     "37 hours",
			Categories:   []string{"web-development", "programming", "javascript"},
			ThumbnailURL: "https://img-c.udemycdn.com/course/240x135/1463348_52a4_2.jpg",
			Description:  "Learn and build projects with pure JavaScript (No frameworks or libraries)",
		},
		{
			Title:        "React - The Complete Guide",
			ProviderName: "Udemy",
			ProviderSlug: "udemy",
			URL:          "https://www.udemy.com/course/react-the-complete-guide-incl-redux/",
			Price:        price(499),
			Currency:     "INR",
			Rating:       rating(4.6),
			Duration:     "49 hours",
			Categories:   []string{"web-development", "programming", "react"},
			ThumbnailURL: "https://img-c.udemycdn.com/course/240x135/1362070_b9a1_2.jpg",
			Description:  "Dive in and learn React.js from scratch!",
		},
		{
			Title:        "Python for Beginners - Learn Programming from scratch",
			ProviderName: "Udemy",
			ProviderSlug: "udemy",
			URL:          "https://www.udemy.com/course/python-for-beginners-learn-programming-from-scratch/",
			Price:        price(299),
			Currency:     "INR",
			Rating:       rating(4.5),
			Duration:     "9 hours",
			Categories:   []string{"python", "programming"},
			ThumbnailURL: "https://img-c.udemycdn.com/course/240x135/394676_ce3d_5.jpg",
			Description:  "Learn Python programming from basics to advanced. Perfect for beginners!",
		},
		{
			Title:        "Python for Data Science and Machine Learning Bootcamp",
			ProviderName: "Udemy",
			ProviderSlug: "udemy",
			URL:          "https://www.udemy.com/course/python-for-data-science-and-machine-learning-bootcamp/",
			Price:        price(499),
			Currency:     "INR",
			Rating:       rating(4.6),
			Duration:     "25 hours",
			Categories:   []string{"data-science", "machine-learning", "python", "programming"},
			ThumbnailURL: "https://img-c.udemycdn.com/course/240x135/903744_8eb2.jpg",
			Description:  "Learn Python for Data Science, NumPy, Pandas, Matplotlib, Scikit-Learn, Machine Learning",
		},
		{
			Title:        "Machine Learning A-Z: AI, Python & R",
			ProviderName: "Udemy",
			ProviderSlug: "udemy",
			URL:          "https://www.udemy.com/course/machinelearning/",
			Price:        price(499),
			Currency:     "INR",
			Rating:       rating(4.5),
			Duration:     "44 hours",
			Categories:   []string{"machine-learning", "data-science", "ai", "python"},
			ThumbnailURL: "https://img-c.udemycdn.com/course/240x135/950390_270f_3.jpg",
			Description:  "Learn to create Machine Learning Algorithms in Python and R",
		},
		{
			Title:        "The Complete Digital Marketing Course - 12 Courses in 1",
			ProviderName: "Udemy",
			ProviderSlug: "udemy",
			URL:          "https://www.udemy.com/course/learn-digital-marketing-course/",
			Price:        price(449),
			Currency:     "INR",
			Rating:       rating(4.4),
			Duration:     "23 hours",
			Categories:   []string{"digital-marketing", "business", "seo"},
			ThumbnailURL: "https://img-c.udemycdn.com/course/240x135/1362070_b9a1_2.jpg",
			Description:  "Master Digital Marketing: SEO, Social Media, Email Marketing, and more!",
		},
		{
			Title:        "Microsoft Excel - Excel from Beginner to Advanced",
			ProviderName: "Udemy",
			ProviderSlug: "udemy",
			URL:          "https://www.udemy.com/course/microsoft-excel-2013-from-beginner-to-advanced-and-beyond/",
			Price:        price(49),
			Currency:     "INR",
			Rating:       rating(4.6),
			Duration:     "16 hours",
			Categories:   []string{"excel", "productivity", "microsoft-office"},
			ThumbnailURL: "https://img-c.udemycdn.com/course/240x135/321410_7f8b_5.jpg",
			Description:  "Master Microsoft Excel from Beginner to Advanced level.",
		},
		{
			Title:        "The Complete JavaScript Course 2024",
			ProviderName: "Udemy",
			ProviderSlug: "udemy",
			URL:          "https://www.udemy.com/course/the-complete-javascript-course/",
			Price:        price(399),
			Currency:     "INR",
			Rating:       rating(4.7),
			Duration:     "69 hours",
			Categories:   []string{"javascript", "programming", "web-development"},
			ThumbnailURL: "https://img-c.udemycdn.com/course/240x135/851712_fc61_6.jpg",
			Description:  "The modern JavaScript course for everyone! Master JavaScript with projects.",
		},
		{
			Title:        "Adobe Premiere Pro CC - Advanced Training Course",
			ProviderName: "Udemy",
			ProviderSlug: "udemy",
			URL:          "https://www.udemy.com/course/adobe-premiere-pro-video-editing/",
			Price:        price(449),
			Currency:     "INR",
			Rating:       rating(4.6),
			Duration:     "11 hours",
			Categories:   []string{"video-editing", "adobe-premiere", "creative"},
			ThumbnailURL: "https://img-c.udemycdn.com/course/240x135/1361498_7d11_2.jpg",
			Description:  "Master Adobe Premiere Pro CC for professional video editing",
		},
		{
			Title:        "Complete DaVinci Resolve 18 Video Editing Course",
			ProviderName: "Udemy",
			ProviderSlug: "udemy",
			URL:          "https://www.udemy.com/course/davinci-resolve-video-editing/",
			Price:        price(399),
			Currency:     "INR",
			Rating:       rating(4.7),
			Duration:     "16 hours",
			Categories:   []string{"video-editing", "davinci-resolve", "creative"},
			ThumbnailURL: "https://img-c.udemycdn.com/course/240x135/2451516_e8da.jpg",
			Description:  "Learn professional video editing with DaVinci Resolve",
		},
		{
			Title:        "Graphic Design Masterclass - Learn GREAT Design",
			ProviderName: "Udemy",
			ProviderSlug: "udemy",
			URL:          "https://www.udemy.com/course/graphic-design-masterclass-everything-you-need-to-know/",
			Price:        price(349),
			Currency:     "INR",
			Rating:       rating(4.6),
			Duration:     "18 hours",
			Categories:   []string{"graphic-design", "creative", "photoshop"},
			ThumbnailURL: "https://img-c.udemycdn.com/course/240x135/1643044_e281_5.jpg",
			Description:  "The ultimate graphic design course covering Photoshop, Illustrator and design theory",
		},
		{
			Title:        "CS50's Introduction to Computer Science",
			ProviderName: "Coursera",
			ProviderSlug: "coursera",
			URL:          "https://www.edx.org/course/introduction-computer-science-harvardx-cs50x",
			Price:        nil,
			Currency:     "INR",
			Rating:       rating(4.9),
			Duration:     "12 weeks",
			Categories:   []string{"programming", "computer-science"},
			ThumbnailURL: "https://prod-discovery.edx-cdn.org/media/course/image/da1b2400-322b-459b-97b0-0c557f05d017.jpg",
			Description:  "An introduction to the intellectual enterprises of computer science and the art of programming.",
		},
		{
			Title:        "Google Data Analytics Professional Certificate",
			ProviderName: "Coursera",
			ProviderSlug: "coursera",
			URL:          "https://www.coursera.org/professional-certificates/google-data-analytics",
			Price:        price(780),
			Currency:     "INR",
			Rating:       rating(4.8),
			Duration:     "6 months",
			Categories:   []string{"data-science", "analytics", "career"},
			ThumbnailURL: "https://d3njjcbhbojbot.cloudfront.net/api/utilities/v1/imageproxy/google-data-analytics.png",
			Description:  "Get on the fast track to a career in data analytics.",
		},
	}
}
