// Package seed carries the compiled-in sample catalog shipped with the app.
package seed

import "filmapp/internal/models"

const imageBase = "https://image.tmdb.org/t/p/w500/"

func film(id int, title, category, description, duration string, year int, rating float64, image string) models.Film {
	return models.Film{
		ID:            id,
		Title:         title,
		Category:      category,
		Description:   description,
		Duration:      duration,
		Year:          year,
		Rating:        rating,
		ImageURL:      imageBase + image,
		WatchPriority: models.PriorityMedium,
	}
}

// Categories returns a fresh copy of the sample catalog in merge order.
func Categories() []models.Category {
	return []models.Category{
		{Name: models.CategoryTrending, Films: trending()},
		{Name: models.CategoryPopular, Films: popular()},
		{Name: models.CategoryNewReleases, Films: newReleases()},
		{Name: models.CategoryAction, Films: action()},
		{Name: models.CategoryComedy, Films: comedy()},
	}
}

func trending() []models.Film {
	return []models.Film{
		film(1, "Avengers: Endgame", "Action • Adventure", "The epic conclusion to the Infinity Saga", "3h 1m", 2019, 8.4, "or06FN3Dka5tukK1e9sl16pB3iy.jpg"),
		film(2, "Spider-Man: No Way Home", "Action • Sci-Fi", "Multiverse adventure with Spider-Man", "2h 28m", 2021, 8.2, "1g0dhYtq4irTY1GPXvft6k4YLjm.jpg"),
		film(3, "The Batman", "Action • Crime", "Dark knight detective story", "2h 56m", 2022, 7.8, "seyWFgGInaLqW7nOZvuJZCVRuP0.jpg"),
		film(16, "Black Widow", "Action • Adventure", "Natasha Romanoff confronts her past", "2h 14m", 2021, 6.7, "qAZ0pzat24kLdO3o8ejmbLxyOac.jpg"),
		film(17, "Shang-Chi", "Action • Fantasy", "Martial artist confronts his past", "2h 12m", 2021, 7.4, "1BIoJGKbXjdFDAqUEiA2VHqkK1Z.jpg"),
		film(18, "Eternals", "Action • Fantasy", "Ancient aliens protect Earth", "2h 37m", 2021, 6.3, "bcCBq9N1EMo3daNIjWJ8kYvrQm6.jpg"),
		film(19, "Doctor Strange 2", "Action • Fantasy", "Multiverse of madness", "2h 6m", 2022, 6.9, "9Gtg2DzBhmYamXBS1hKAhiwbBKS.jpg"),
		film(20, "Thor: Love and Thunder", "Action • Comedy", "Thor's new adventure", "1h 59m", 2022, 6.2, "pIkRyD18kl4FhoCNQuWxWu5cBLM.jpg"),
		film(21, "Black Adam", "Action • Fantasy", "Anti-hero emerges in DC universe", "2h 5m", 2022, 6.3, "pFlaoHTZeyNkG83vxsAJiGzfSsa.jpg"),
		film(22, "The Flash", "Action • Adventure", "Speedster alters timeline", "2h 24m", 2023, 6.8, "rktDFPbfHfUbArZ6OOOKsXcv0Bm.jpg"),
	}
}

func popular() []models.Film {
	return []models.Film{
		film(4, "Dune", "Sci-Fi • Adventure", "Desert planet epic adventure", "2h 35m", 2021, 8.0, "d5NXSklXo0qyIYkgV94XAgMIckC.jpg"),
		film(5, "Top Gun: Maverick", "Action • Drama", "High-flying sequel to classic", "2h 11m", 2022, 8.6, "62HCnUTziyWcpDaBO2i1DX17ljH.jpg"),
		film(6, "Black Panther", "Action • Adventure", "Wakanda superhero story", "2h 14m", 2018, 7.3, "uxzzxijgPIY7slzFvMotPv8wjKA.jpg"),
		film(25, "Wonder Woman", "Action • Adventure", "Amazon princess saves world", "2h 21m", 2017, 7.4, "imekS7f1OuHyUP2LAiTEM0zBzUz.jpg"),
		film(26, "Jurassic World", "Action • Adventure", "Dinosaur theme park disaster", "2h 4m", 2015, 7.0, "jjBgi2r5cRt36xF6iNUEhzscEcb.jpg"),
		film(27, "The Matrix", "Sci-Fi • Action", "Hacker discovers reality", "2h 16m", 1999, 8.7, "f89U3ADr1oiB1s9GkdPOEpXUk5H.jpg"),
		film(28, "Inception", "Sci-Fi • Thriller", "Dream within a dream heist", "2h 28m", 2010, 8.8, "9gk7adHYeDvHkCSEqAvQNLV5Uge.jpg"),
		film(29, "Interstellar", "Sci-Fi • Drama", "Space travel to save humanity", "2h 49m", 2014, 8.6, "gEU2QniE6E77NI6lCU6MxlNBvIx.jpg"),
		film(30, "The Dark Knight", "Action • Crime", "Batman vs Joker", "2h 32m", 2008, 9.0, "qJ2tW6WMUDux911r6m7haRef0WH.jpg"),
		film(31, "Gladiator", "Action • Drama", "Roman general seeks revenge", "2h 35m", 2000, 8.5, "ty8TGRuvJLPUmAR1H1nRIsgwvim.jpg"),
	}
}

func newReleases() []models.Film {
	return []models.Film{
		film(7, "Avatar: The Way of Water", "Sci-Fi • Adventure", "Underwater alien world", "3h 12m", 2022, 7.6, "t6HIqrRAclMCA60NsSmeqe9RmNV.jpg"),
		film(8, "John Wick 4", "Action • Thriller", "Assassin revenge story", "2h 49m", 2023, 7.7, "vZloFAK7NmvMGKE7VkF5UHaz0I.jpg"),
		film(9, "Oppenheimer", "Biography • Drama", "Atomic bomb creation story", "3h 0m", 2023, 8.3, "8Gxv8gSFCU0XGDykEGv7zR1n2ua.jpg"),
		film(34, "Barbie", "Comedy • Adventure", "Barbie ventures to real world", "1h 54m", 2023, 7.8, "iuFNMS8U5cb6xfzi51Dbkovj7vM.jpg"),
		film(35, "Mission Impossible 7", "Action • Adventure", "Ethan Hunt's deadliest mission", "2h 43m", 2023, 7.8, "NNxYkU70HPurnNCSiCjYAmacwm.jpg"),
		film(36, "The Little Mermaid", "Fantasy • Musical", "Mermaid dreams of human world", "2h 15m", 2023, 7.2, "ym1dxyOk4jFcSl4Q2zmRrA5BEEC.jpg"),
		film(37, "Fast X", "Action • Thriller", "Dom Toretto's final ride", "2h 21m", 2023, 6.5, "fiVW06jE7z9YnO4trhaMEdclSiC.jpg"),
		film(38, "Transformers: Rise of the Beasts", "Action • Sci-Fi", "New Transformers adventure", "2h 7m", 2023, 6.1, "gPbM0MK8CP8A174rmUwGsADNYKD.jpg"),
		film(39, "Indiana Jones 5", "Action • Adventure", "Archaeologist's final journey", "2h 34m", 2023, 6.7, "Af4bXE63pVsb2FtbW8uYIyPBadD.jpg"),
		film(40, "The Marvels", "Action • Adventure", "Carol Danvers teams up", "1h 45m", 2023, 6.5, "9GBhzXMFjgcZ3FdR9w3bUMMTps5.jpg"),
	}
}

func action() []models.Film {
	return []models.Film{
		film(10, "Mission Impossible", "Action • Adventure", "Spy action thriller", "2h 23m", 1996, 7.1, "vkjsoMF86dJIvNrSEmYQRVxDFxh.jpg"),
		film(11, "Fast & Furious", "Action • Crime", "Car racing family story", "2h 23m", 2009, 6.8, "dkMD69qHuu6U4Z1qk01E34hVfwp.jpg"),
		film(12, "The Dark Knight", "Action • Crime", "Batman vs Joker classic", "2h 32m", 2008, 9.0, "qJ2tW6WMUDux911r6m7haRef0WH.jpg"),
		film(43, "Die Hard", "Action • Thriller", "Cop battles terrorists", "2h 12m", 1988, 8.2, "yFihWxQcmqcaBR31QM6Y8gT6aYV.jpg"),
		film(44, "Terminator 2", "Action • Sci-Fi", "Cyborg protects future leader", "2h 17m", 1991, 8.6, "5M0j0B18abtBI5gi2RhfjjurTqb.jpg"),
		film(45, "Predator", "Action • Sci-Fi", "Special forces vs alien hunter", "1h 47m", 1987, 7.8, "k3mW4qfJo6Skhrr2rYIYbF4NHei.jpg"),
		film(46, "The Raid", "Action • Crime", "SWAT team raids drug lord", "1h 41m", 2011, 7.6, "7lTnUAfzVYV3VH3nVvVU7vNnFtp.jpg"),
		film(47, "Kill Bill", "Action • Thriller", "Assassin seeks revenge", "1h 51m", 2003, 8.1, "v7TaX8kXMXs5yFFGR41guUDNcnB.jpg"),
		film(48, "The Bourne Identity", "Action • Thriller", "Amnesiac assassin discovers past", "1h 59m", 2002, 7.9, "bXQIL36VQdzJ69lcjQR1WQzJqQR.jpg"),
		film(49, "Taken", "Action • Thriller", "Father rescues kidnapped daughter", "1h 33m", 2008, 7.8, "gQXCWwblYpVenSTDjn1bpl32kL7.jpg"),
	}
}

func comedy() []models.Film {
	return []models.Film{
		film(13, "Superbad", "Comedy • Teen", "High school comedy adventure", "1h 53m", 2007, 7.6, "ek8e8txUyUwd2BNqj6lFEerJVPu.jpg"),
		film(14, "The Hangover", "Comedy • Mystery", "Vegas bachelor party gone wrong", "1h 40m", 2009, 7.7, "uluhlXubGu1VxU63X9VHCLWDAYP.jpg"),
		film(15, "Step Brothers", "Comedy • Family", "Adult step brothers comedy", "1h 38m", 2008, 6.9, "dSsSjS14AHO7K2g8hqJCxL2J60c.jpg"),
		film(52, "Bridesmaids", "Comedy • Romance", "Wedding preparation chaos", "2h 5m", 2011, 6.8, "kVrU0p6tqaQdqaZkHlsPsJs2zVv.jpg"),
		film(53, "Anchorman", "Comedy • Satire", "1970s news anchor rivalry", "1h 34m", 2004, 7.1, "zMucLbxkI4gqgqkjv6YF2ZkXZx8.jpg"),
		film(54, "21 Jump Street", "Comedy • Action", "Cops go undercover in high school", "1h 49m", 2012, 7.2, "wn3MPzCjgY9rVo2bO1e7AtBqK5q.jpg"),
		film(55, "The Other Guys", "Comedy • Action", "Desk cops become heroes", "1h 47m", 2010, 6.6, "eFTuS7gMCmQYC20ACwTzxIh6AcL.jpg"),
		film(56, "Ted", "Comedy • Fantasy", "Man and his talking teddy bear", "1h 46m", 2012, 6.9, "yLdP2vDa1Bqx1sX2B2Q0D9i9Mnj.jpg"),
		film(57, "Pitch Perfect", "Comedy • Music", "College a cappella group", "1h 52m", 2012, 7.1, "l8Qbu1A8LkGq9U0vL4a4eJZbbTG.jpg"),
		film(58, "Game Night", "Comedy • Mystery", "Game night turns real", "1h 40m", 2018, 6.9, "qmixX8s2PG8Tcf9mYm2ZvRC1Z34.jpg"),
	}
}
