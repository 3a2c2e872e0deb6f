package db

import (
	"strconv"

	"github.com/yskmt/cantus/constants"
	"github.com/yskmt/cantus/model"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

// Enabled reports whether a metadata table is configured at all.
// Commands skip the store entirely when it is not.
func Enabled() bool {
	return constants.GetMetadataTable() != ""
}

func newClient() *dynamodb.DynamoDB {
	endpoint := constants.GetMetadataEndpoint()
	session, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		panic("Could not create a new DynamoDB session because " + err.Error())
	}
	return dynamodb.New(session)
}

func PutRunMetadata(m model.RunMetadata) {
	client := newClient()
	item := map[string]*dynamodb.AttributeValue{
		"PK":          {S: aws.String(m.RunId)},
		"Seed":        {N: aws.String(strconv.FormatInt(m.Seed, 10))},
		"Paradigm":    {S: aws.String(m.Paradigm)},
		"Bars":        {N: aws.String(strconv.FormatUint(uint64(m.Bars), 10))},
		"NumNotes":    {N: aws.String(strconv.FormatUint(uint64(m.NumNotes), 10))},
		"NumWarnings": {N: aws.String(strconv.FormatUint(uint64(m.NumWarnings), 10))},
	}
	input := &dynamodb.PutItemInput{
		TableName: aws.String(constants.GetMetadataTable()),
		Item:      item,
	}
	if _, err := client.PutItem(input); err != nil {
		panic("Error from DynamoDB: " + err.Error())
	}
}

func GetRunMetadata(runId string) (model.RunMetadata, bool) {
	client := newClient()
	input := &dynamodb.GetItemInput{
		TableName: aws.String(constants.GetMetadataTable()),
		Key: map[string]*dynamodb.AttributeValue{
			"PK": {S: aws.String(runId)},
		},
	}
	res, err := client.GetItem(input)
	if err != nil {
		panic("Error from DynamoDB: " + err.Error())
	}
	if res.Item == nil {
		return model.RunMetadata{}, false
	}

	var m model.RunMetadata
	m.RunId = runId
	if res.Item["Seed"].N != nil {
		m.Seed, _ = strconv.ParseInt(*res.Item["Seed"].N, 10, 64)
	}
	if res.Item["Paradigm"].S != nil {
		m.Paradigm = *res.Item["Paradigm"].S
	}
	if res.Item["Bars"].N != nil {
		bars, _ := strconv.ParseUint(*res.Item["Bars"].N, 10, 32)
		m.Bars = uint32(bars)
	}
	if res.Item["NumNotes"].N != nil {
		n, _ := strconv.ParseUint(*res.Item["NumNotes"].N, 10, 32)
		m.NumNotes = uint(n)
	}
	if res.Item["NumWarnings"].N != nil {
		n, _ := strconv.ParseUint(*res.Item["NumWarnings"].N, 10, 32)
		m.NumWarnings = uint(n)
	}
	return m, true
}
