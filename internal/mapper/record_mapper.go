package mapper

import (
	"voter-registry-be/internal/entity"
	"voter-registry-be/internal/model"
)

type RecordMapper struct{}

func NewRecordMapper() *RecordMapper {
	return &RecordMapper{}
}

func (m *RecordMapper) ToEntity(r *model.Record) *entity.Record {
	if r == nil {
		return nil
	}
	return &entity.Record{
		Id:                 r.Id,
		BatchId:            r.BatchId,
		BatchName:          r.Batch.Name,
		FileName:           r.FileName,
		SerialNo:           r.SerialNo,
		Name:               r.Name,
		VoterNo:            r.VoterNo,
		FatherName:         r.FatherName,
		MotherName:         r.MotherName,
		Occupation:         r.Occupation,
		OccupationDetails:  r.OccupationDetails,
		BirthDate:          r.BirthDate,
		Address:            r.Address,
		PhoneNumber:        r.PhoneNumber,
		WhatsappNumber:     r.WhatsappNumber,
		FacebookLink:       r.FacebookLink,
		TiktokLink:         r.TiktokLink,
		YoutubeLink:        r.YoutubeLink,
		InstaLink:          r.InstaLink,
		PhotoLink:          r.PhotoLink,
		Description:        r.Description,
		PoliticalStatus:    r.PoliticalStatus,
		RelationshipStatus: r.RelationshipStatus,
		Gender:             r.Gender,
		Age:                r.Age,
		CreatedAt:          r.CreatedAt,
	}
}

func (m *RecordMapper) ToModel(r *entity.Record) *model.Record {
	if r == nil {
		return nil
	}
	return &model.Record{
		Id:                 r.Id,
		BatchId:            r.BatchId,
		FileName:           r.FileName,
		SerialNo:           r.SerialNo,
		Name:               r.Name,
		VoterNo:            r.VoterNo,
		FatherName:         r.FatherName,
		MotherName:         r.MotherName,
		Occupation:         r.Occupation,
		OccupationDetails:  r.OccupationDetails,
		BirthDate:          r.BirthDate,
		Address:            r.Address,
		PhoneNumber:        r.PhoneNumber,
		WhatsappNumber:     r.WhatsappNumber,
		FacebookLink:       r.FacebookLink,
		TiktokLink:         r.TiktokLink,
		YoutubeLink:        r.YoutubeLink,
		InstaLink:          r.InstaLink,
		PhotoLink:          r.PhotoLink,
		Description:        r.Description,
		PoliticalStatus:    r.PoliticalStatus,
		RelationshipStatus: r.RelationshipStatus,
		Gender:             r.Gender,
		Age:                r.Age,
		CreatedAt:          r.CreatedAt,
	}
}

func (m *RecordMapper) ToEntities(records []*model.Record) []*entity.Record {
	result := make([]*entity.Record, 0, len(records))
	for _, r := range records {
		result = append(result, m.ToEntity(r))
	}
	return result
}

func (m *RecordMapper) ToSummary(r *model.Record) entity.RecordSummary {
	return entity.RecordSummary{
		Id:         r.Id,
		Name:       r.Name,
		VoterNo:    r.VoterNo,
		FatherName: r.FatherName,
		MotherName: r.MotherName,
		PhotoLink:  r.PhotoLink,
		Gender:     r.Gender,
		Age:        r.Age,
	}
}
