// Package content provides the static portfolio data.
package content

import "github.com/ajeetyadav1111/termfolio/internal/model"

// Default returns the built-in portfolio content. Each call returns a fresh copy.
func Default() model.Content {
	return model.Content{
		Profile: model.Profile{
			Name:      "Ajeet Yadav",
			Initials:  "AY",
			Label:     "FULL STACK",
			Badge:     "AVAILABLE FOR WORK",
			Summary:   "Passionate full-stack developer crafting high-performance web applications with modern tech. I turn complex problems into elegant, scalable solutions.",
			Email:     "ajeety4969@gmail.com",
			Footer:    "Built with Go & Bubble Tea · 2025",
			Available: "Open to full-time & freelance opportunities",
		},
		Phrases: []string{
			"Full Stack Developer",
			"Next.js Developer",
			"React Enthusiast",
			"Node.js Engineer",
		},
		Nav: []string{"About", "Skills", "Projects", "Contact"},
		Skills: []model.Skill{
			{Name: "HTML5", Icon: "🌐", Color: "#e34c26", Level: 95},
			{Name: "CSS3", Icon: "🎨", Color: "#264de4", Level: 90},
			{Name: "JavaScript", Icon: "⚡", Color: "#f7df1e", Level: 88},
			{Name: "React", Icon: "⚛", Color: "#61dafb", Level: 85},
			{Name: "Next.js", Icon: "▲", Color: "#a8b4c8", Level: 82},
			{Name: "Node.js", Icon: "🟢", Color: "#8cc84b", Level: 80},
			{Name: "Express.js", Icon: "🚀", Color: "#a78bfa", Level: 78},
			{Name: "MongoDB", Icon: "🍃", Color: "#4db33d", Level: 75},
			{Name: "MySQL", Icon: "🐬", Color: "#00a0c4", Level: 72},
		},
		Projects: []model.Project{
			{
				Title: "Crown Hotel – Luxury Hotel Website",
				Desc:  "A modern, fully responsive luxury hotel website built with Next.js and Tailwind CSS. Designed with premium UI, smooth animations, SEO optimization, and deployed on Vercel for high performance.",
				Tech:  []string{"Next.js", "Tailwind CSS", "React", "Vercel", "GSAP"},
				Color: "#00d4ff",
				Icon:  "🏨",
				Link:  "https://crown-hotel-13zwn7dy1-ajeety4969-gmailcoms-projects.vercel.app",
			},
			{
				Title: "Task Management App",
				Desc:  "Real-time collaborative task board with drag-and-drop, notifications and team features.",
				Tech:  []string{"Next.js", "Express.js", "MySQL", "Socket.io"},
				Color: "#7c3aed",
				Icon:  "📋",
				Link:  "#",
			},
			{
				Title: "Blog CMS",
				Desc:  "Content management system with rich text editor, SEO optimization and analytics.",
				Tech:  []string{"Next.js", "MongoDB", "Node.js", "CSS3"},
				Color: "#f59e0b",
				Icon:  "✍",
				Link:  "#",
			},
			{
				Title: "REST API Service",
				Desc:  "Scalable RESTful API with JWT auth, rate limiting, caching and comprehensive docs.",
				Tech:  []string{"Express.js", "MySQL", "JWT", "Node.js"},
				Color: "#10b981",
				Icon:  "⚙",
				Link:  "#",
			},
		},
		Socials: []model.SocialLink{
			{Label: "GitHub", URL: "https://github.com/ajeetyadav1111", Icon: "gh"},
			{Label: "LinkedIn", URL: "https://www.linkedin.com/in/ajeet-yadav1127", Icon: "in"},
		},
	}
}
