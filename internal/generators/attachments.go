package generators

import (
	"time"

	"github.com/workseedhq/workseed/internal/models"
	"github.com/workseedhq/workseed/internal/utils"
)

// fileFamily groups extensions, base names and a realistic size range for
// one kind of upload.
type fileFamily struct {
	extensions []string
	names      []string
	minSize    int64
	maxSize    int64
}

var fileFamilies = []fileFamily{
	{
		extensions: []string{".pdf", ".docx", ".doc", ".txt", ".md"},
		names:      []string{"requirements", "specs", "proposal", "report", "notes", "summary", "brief"},
		minSize:    10000, // 10KB - 5MB
		maxSize:    5000000,
	},
	{
		extensions: []string{".xlsx", ".csv", ".xls"},
		names:      []string{"data", "analysis", "budget", "timeline", "metrics", "tracking"},
		minSize:    5000, // 5KB - 2MB
		maxSize:    2000000,
	},
	{
		extensions: []string{".png", ".jpg", ".jpeg", ".gif", ".svg"},
		names:      []string{"screenshot", "mockup", "design", "diagram", "chart", "logo"},
		minSize:    50000, // 50KB - 10MB
		maxSize:    10000000,
	},
	{
		extensions: []string{".pptx", ".ppt", ".key"},
		names:      []string{"presentation", "deck", "slides", "pitch", "overview"},
		minSize:    100000, // 100KB - 20MB
		maxSize:    20000000,
	},
}

const (
	maxAttachmentsPerTask     = 3
	attachmentUploadSpanHours = 72
	attachmentClipSpanHours   = 24
)

// AttachmentGenerator produces file uploads on tasks.
type AttachmentGenerator struct {
	env *Env
}

func NewAttachmentGenerator(env *Env) *AttachmentGenerator {
	return &AttachmentGenerator{env: env}
}

// Generate attaches 1..3 files to the configured share of tasks. File names
// carry a short hex token so repeated base names stay distinct; the stored
// type is the extension without its dot.
func (g *AttachmentGenerator) Generate(tasks []models.Task, users []models.User, ratio float64) []models.Attachment {
	if len(tasks) == 0 || len(users) == 0 {
		return nil
	}

	r := g.env.Rand
	var attachments []models.Attachment

	for _, task := range tasks {
		if r.Float64() > ratio {
			continue
		}

		count := 1 + r.Intn(maxAttachmentsPerTask)
		for i := 0; i < count; i++ {
			family := fileFamilies[r.Intn(len(fileFamilies))]
			extension := family.extensions[r.Intn(len(family.extensions))]
			baseName := family.names[r.Intn(len(family.names))]

			uploadedAt := task.CreatedAt.Add(time.Duration(r.Intn(attachmentUploadSpanHours+1)) * time.Hour)
			if uploadedAt.After(g.env.Now) {
				uploadedAt = g.env.Now.Add(-time.Duration(1+r.Intn(attachmentClipSpanHours)) * time.Hour)
				if uploadedAt.Before(task.CreatedAt) {
					uploadedAt = task.CreatedAt
				}
			}

			attachments = append(attachments, models.Attachment{
				ID:         utils.NewID(r),
				TaskID:     task.ID,
				FileName:   baseName + "_" + utils.HexToken(r, 3) + extension,
				FileType:   extension[1:],
				FileSize:   family.minSize + r.Int63n(family.maxSize-family.minSize+1),
				UploadedBy: users[r.Intn(len(users))].ID,
				UploadedAt: uploadedAt,
			})
		}
	}
	return attachments
}
