package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// fakeDynamo records the last input of each call and returns canned outputs.
type fakeDynamo struct {
	putIn    *dynamodb.PutItemInput
	getIn    *dynamodb.GetItemInput
	queryIn  *dynamodb.QueryInput
	updateIn *dynamodb.UpdateItemInput
	scanIns  []dynamodb.ScanInput

	putErr    error
	getOut    *dynamodb.GetItemOutput
	getErr    error
	queryOut  *dynamodb.QueryOutput
	queryErr  error
	updateOut *dynamodb.UpdateItemOutput
	updateErr error
	scanOuts  []*dynamodb.ScanOutput
	scanErr   error
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.putIn = in
	if f.putErr != nil {
		return nil, f.putErr
	}
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.getIn = in
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.getOut == nil {
		return &dynamodb.GetItemOutput{}, nil
	}
	return f.getOut, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queryIn = in
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	if f.queryOut == nil {
		return &dynamodb.QueryOutput{}, nil
	}
	return f.queryOut, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updateIn = in
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if f.updateOut == nil {
		return &dynamodb.UpdateItemOutput{}, nil
	}
	return f.updateOut, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.scanIns = append(f.scanIns, *in)
	if f.scanErr != nil {
		return nil, f.scanErr
	}
	if len(f.scanOuts) == 0 {
		return &dynamodb.ScanOutput{}, nil
	}
	out := f.scanOuts[0]
	f.scanOuts = f.scanOuts[1:]
	return out, nil
}
