package jobs

import "github.com/digitalai-opensource/job-dispatcher/internal/models"

// SeedJobs returns the jobs written to an empty store on first run.
// Each call returns a new slice.
func SeedJobs() []models.Job {
	return []models.Job{
		{ID: 1, IsOpen: true, Address: "323 Columbia Street Lafayette IN", Client: "Jane Doe",
			Complaint: "My router stopped working.",
			Details:   "Everything was working fine until I had a firmware update which made my router stop functioning.",
			Notes:     "My apartment is at the end of the hall on the third floor."},
		{ID: 2, IsOpen: true, Address: "285 Summer Street Boston MA", Client: "Alex Mo",
			Complaint: "I cannot figure out how to set up my new printer.",
			Details:   "My old printer broke down so I purchased a new one but I cannot figure out how to get it to work properly.",
			Notes:     "I don't have any parking space in front of my house, you will have to park at the roundabout down the street."},
		{ID: 3, IsOpen: true, Address: "77 Massachusetts Ave Cambridge MA", Client: "Harry Joe",
			Complaint: "I need help activating Windows on my PC.",
			Details:   "I recently got a new laptop but am having difficulty activating Windows on it.",
			Notes:     "I need this done before my new job starts on Monday."},
		{ID: 4, IsOpen: true, Address: "5717 Legacy Drive Plano TX", Client: "Smith Ko",
			Complaint: "I can't connect to my router anymore.",
			Details:   "My son tried resetting the router but accidentally broke something while doing so.",
			Notes:     "We may not be home when you arrive so we will leave the key to the house under the doormat."},
		{ID: 5, IsOpen: true, Address: "555 Fayetteville Street Raleigh NC", Client: "John Ro",
			Complaint: "My PC randomly shuts down.",
			Details:   "I recently replaced the graphics card of my gaming PC which somehow caused it to shut down at random times.",
			Notes:     "Please arrive between 1 pm and 5 pm because I usually do not have any meetings at those times."},
		{ID: 6, IsOpen: true, Address: "650 California Street San Francisco CA", Client: "James Jo",
			Complaint: "My internet is extremely slow.",
			Details:   "My internet provider guaranteed fast internet speeds but it is very slow.",
			Notes:     "Please wear a mask."},
		{ID: 7, IsOpen: true, Address: "1054 South De Anza Boulevard San Jose CA", Client: "Jack Vo",
			Complaint: "My laptop frequently overheats.",
			Details:   "My laptop gets extremely hot when I use it to the point where I can't even touch it without burning my hand.",
			Notes:     "Please bring heat proof gloves if you have them."},
		{ID: 8, IsOpen: true, Address: "52 Third Avenue Burlington MA", Client: "Kate Zo",
			Complaint: "I can't access anything on my hard drive.",
			Details:   "I have an old hard drive that I would like to access but my computer does not even recognize that it is connected.",
			Notes:     "Please knock when you arrive, the doorbell doesn't work."},
		{ID: 9, IsOpen: false, Address: "2800 E Observatory Rd Los Angeles CA", Client: "Hannah Sto",
			Complaint: "My company's servers lost all their data.",
			Details:   "Production went down at our company and all the data we gathered over the past year seems to have been lost.",
			Notes:     "We have the necessary tools for maintenance prepared for you."},
		{ID: 10, IsOpen: false, Address: "225 Park Ave S New York NY", Client: "Kevin Roy",
			Complaint: "I can no longer log into my network.",
			Details:   "One day I suddenly wasn't able to log into my network, I need help changing the password back to what it was.",
			Notes:     "Let me know when you arrive, my apartment requires a keycard to get into the building."},
		{ID: 11, IsOpen: false, Address: "400 Broad St Seattle WA", Client: "Ben Hee",
			Complaint: "I have a virus on my computer.",
			Details:   "I somehow got a virus on my computer and I need help getting rid of it as soon as possible.",
			Notes:     "I paid for the immediate help option to get this issue fixed immediately."},
	}
}
