package dbmodels

type FileType string

const (
	CompanyLogo      FileType = "company_logo"
	SpecialtyPicture FileType = "specialty_picture"
	ApplicationPhoto FileType = "application_photo"
)

// FileStorage - метаданные файла, сам файл лежит в S3 под ключом ID
type FileStorage struct {
	BaseModel
	Name        string
	Type        FileType
	ContentType string
}
